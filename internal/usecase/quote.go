package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// QuoteUseCase encapsulates quote submission and arbitration: accepting one
// quote atomically closes its RFQ, rejects every pending sibling, and
// materializes the contract.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	rfqs     repository.RFQRepository
	profiles repository.ProfileRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewQuoteUseCase constructs QuoteUseCase.
func NewQuoteUseCase(
	quotes repository.QuoteRepository,
	rfqs repository.RFQRepository,
	profiles repository.ProfileRepository,
	notifier Notifier,
	logger *slog.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, rfqs: rfqs, profiles: profiles, notifier: notifier, logger: logger}
}

// Submit records a supplier's quote against an open RFQ. The first quote
// moves the RFQ from Pending to Quoted.
func (u *QuoteUseCase) Submit(ctx context.Context, actor model.Actor, rfqID int64, price decimal.Decimal, minOrderQty, leadTimeDays int, message string) (*model.Quote, error) {
	if actor.Role != model.RoleSupplier {
		return nil, domainErrors.ErrForbidden
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	if minOrderQty < 0 || leadTimeDays < 0 {
		return nil, fmt.Errorf("%w: negative quantity or lead time", domainErrors.ErrValidation)
	}

	rfq, err := u.rfqs.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq.Status == model.RFQStatusClosed {
		return nil, fmt.Errorf("%w: rfq is closed", domainErrors.ErrInvalidStateTransition)
	}

	quote, err := u.quotes.Create(ctx, &model.Quote{
		RFQID:        rfq.ID,
		SupplierID:   actor.ProfileID,
		Price:        price,
		MinOrderQty:  minOrderQty,
		LeadTimeDays: leadTimeDays,
		Message:      message,
		Status:       model.QuoteStatusPending,
	})
	if err != nil {
		return nil, err
	}

	u.notifyShop(ctx, rfq.ShopID, model.NotificationQuoteReceived,
		"New quote", fmt.Sprintf("A supplier quoted your request #%d", rfq.ID), "/shop/rfqs")

	return quote, nil
}

// Accept selects the winning quote on behalf of the shop owning the RFQ and
// returns the materialized contract. The winner's acceptance, the RFQ
// closure, the rejection of every pending sibling, and the contract insert
// are applied as one atomic unit; a concurrent acceptance of a sibling makes
// this call fail with ErrInvalidStateTransition and no state change.
func (u *QuoteUseCase) Accept(ctx context.Context, actor model.Actor, quoteID int64) (*model.Contract, error) {
	if actor.Role != model.RoleShop {
		return nil, domainErrors.ErrForbidden
	}

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	rfq, err := u.rfqs.GetByID(ctx, quote.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq.ShopID != actor.ProfileID {
		return nil, domainErrors.ErrForbidden
	}
	if quote.Status != model.QuoteStatusPending {
		return nil, fmt.Errorf("%w: quote already processed", domainErrors.ErrInvalidStateTransition)
	}

	contract := MaterializeContract(quote, rfq, time.Now())
	result, err := u.quotes.Accept(ctx, quote, contract)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(result.SupplierUserID, model.NotificationQuoteAccepted,
		"Quote accepted", fmt.Sprintf("Your quote for request #%d was accepted", rfq.ID), "/supplier/quotes")
	u.notifier.Notify(result.SupplierUserID, model.NotificationContractCreated,
		"Contract created", fmt.Sprintf("Contract #%d is now active", result.Contract.ID), "/supplier/contracts")
	u.notifier.Notify(result.ShopUserID, model.NotificationContractCreated,
		"Contract created", fmt.Sprintf("Contract #%d is now active", result.Contract.ID), "/shop/contracts")
	for _, sibling := range result.Rejected {
		u.notifier.Notify(sibling.SupplierUserID, model.NotificationQuoteRejected,
			"Quote rejected", fmt.Sprintf("Your quote for request #%d was not selected", rfq.ID), "/supplier/quotes")
	}

	return &result.Contract, nil
}

// Reject declines a single pending quote. The parent RFQ stays open.
func (u *QuoteUseCase) Reject(ctx context.Context, actor model.Actor, quoteID int64) (*model.Quote, error) {
	if actor.Role != model.RoleShop {
		return nil, domainErrors.ErrForbidden
	}

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	rfq, err := u.rfqs.GetByID(ctx, quote.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq.ShopID != actor.ProfileID {
		return nil, domainErrors.ErrForbidden
	}
	if quote.Status != model.QuoteStatusPending {
		return nil, fmt.Errorf("%w: quote already processed", domainErrors.ErrInvalidStateTransition)
	}

	rejected, err := u.quotes.Reject(ctx, quote.ID)
	if err != nil {
		return nil, err
	}

	u.notifySupplier(ctx, rejected.SupplierID, model.NotificationQuoteRejected,
		"Quote rejected", fmt.Sprintf("Your quote for request #%d was rejected", rfq.ID), "/supplier/quotes")

	return rejected, nil
}

// ListForActor returns the quotes visible to the actor: a supplier sees its
// own quotes, a shop sees every quote on its RFQs.
func (u *QuoteUseCase) ListForActor(ctx context.Context, actor model.Actor) ([]model.Quote, error) {
	switch actor.Role {
	case model.RoleSupplier:
		return u.quotes.ListBySupplier(ctx, actor.ProfileID)
	case model.RoleShop:
		return u.quotes.ListByShop(ctx, actor.ProfileID)
	default:
		return nil, errors.New("unknown actor role")
	}
}

func (u *QuoteUseCase) notifyShop(ctx context.Context, shopID int64, t model.NotificationType, title, message, link string) {
	shop, err := u.profiles.GetShop(ctx, shopID)
	if err != nil {
		u.logger.Warn("resolve shop for notification failed",
			slog.Int64("shop_id", shopID), slog.String("error", err.Error()))
		return
	}
	u.notifier.Notify(shop.UserID, t, title, message, link)
}

func (u *QuoteUseCase) notifySupplier(ctx context.Context, supplierID int64, t model.NotificationType, title, message, link string) {
	supplier, err := u.profiles.GetSupplier(ctx, supplierID)
	if err != nil {
		u.logger.Warn("resolve supplier for notification failed",
			slog.Int64("supplier_id", supplierID), slog.String("error", err.Error()))
		return
	}
	u.notifier.Notify(supplier.UserID, t, title, message, link)
}
