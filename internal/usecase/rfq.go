package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// RFQUseCase manages sourcing requests.
type RFQUseCase struct {
	rfqs     repository.RFQRepository
	quotes   repository.QuoteRepository
	products repository.ProductRepository
	profiles repository.ProfileRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewRFQUseCase constructs RFQUseCase.
func NewRFQUseCase(
	rfqs repository.RFQRepository,
	quotes repository.QuoteRepository,
	products repository.ProductRepository,
	profiles repository.ProfileRepository,
	notifier Notifier,
	logger *slog.Logger,
) *RFQUseCase {
	return &RFQUseCase{rfqs: rfqs, quotes: quotes, products: products, profiles: profiles, notifier: notifier, logger: logger}
}

// Create registers a shop's sourcing request against a product and notifies
// the product's supplier.
func (u *RFQUseCase) Create(ctx context.Context, actor model.Actor, productID int64, quantity int, message string) (*model.RFQ, error) {
	if actor.Role != model.RoleShop {
		return nil, domainErrors.ErrForbidden
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrValidation)
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	rfq, err := u.rfqs.Create(ctx, &model.RFQ{
		ShopID:    actor.ProfileID,
		ProductID: product.ID,
		Quantity:  quantity,
		Message:   message,
		Status:    model.RFQStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if supplier, err := u.profiles.GetSupplier(ctx, product.SupplierID); err != nil {
		u.logger.Warn("resolve supplier for notification failed",
			slog.Int64("supplier_id", product.SupplierID), slog.String("error", err.Error()))
	} else {
		u.notifier.Notify(supplier.UserID, model.NotificationRFQReceived,
			"New request for quotation",
			fmt.Sprintf("A shop requested %d units of %s", quantity, product.Name),
			"/supplier/rfqs")
	}

	return rfq, nil
}

// Get returns an RFQ if the actor is involved: the owning shop, or the
// supplier whose product the request targets.
func (u *RFQUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error) {
	rfq, err := u.rfqs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, actor, rfq); err != nil {
		return nil, err
	}
	return rfq, nil
}

// ListForActor returns the RFQs visible to the actor: a shop sees its own
// requests, a supplier sees requests targeting its products.
func (u *RFQUseCase) ListForActor(ctx context.Context, actor model.Actor) ([]model.RFQ, error) {
	switch actor.Role {
	case model.RoleShop:
		return u.rfqs.ListByShop(ctx, actor.ProfileID)
	case model.RoleSupplier:
		return u.rfqs.ListForSupplier(ctx, actor.ProfileID)
	default:
		return nil, errors.New("unknown actor role")
	}
}

// Quotes lists the quotes submitted against one RFQ.
func (u *RFQUseCase) Quotes(ctx context.Context, actor model.Actor, rfqID int64) ([]model.Quote, error) {
	rfq, err := u.rfqs.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, actor, rfq); err != nil {
		return nil, err
	}
	return u.quotes.ListByRFQ(ctx, rfq.ID)
}

// Close shuts an RFQ without accepting any quote. Only the owning shop may
// close, and a closed RFQ stays closed.
func (u *RFQUseCase) Close(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error) {
	rfq, err := u.rfqs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleShop || rfq.ShopID != actor.ProfileID {
		return nil, domainErrors.ErrForbidden
	}
	if rfq.Status == model.RFQStatusClosed {
		return nil, fmt.Errorf("%w: rfq already closed", domainErrors.ErrInvalidStateTransition)
	}
	return u.rfqs.Close(ctx, rfq.ID)
}

func (u *RFQUseCase) authorize(ctx context.Context, actor model.Actor, rfq *model.RFQ) error {
	switch actor.Role {
	case model.RoleShop:
		if rfq.ShopID != actor.ProfileID {
			return domainErrors.ErrForbidden
		}
	case model.RoleSupplier:
		product, err := u.products.GetByID(ctx, rfq.ProductID)
		if err != nil {
			return err
		}
		if product.SupplierID != actor.ProfileID {
			return domainErrors.ErrForbidden
		}
	default:
		return domainErrors.ErrForbidden
	}
	return nil
}
