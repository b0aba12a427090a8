package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// statusNotes are the default audit-trail messages per status when the caller
// provides none.
var statusNotes = map[model.OrderStatus]string{
	model.OrderStatusPending:        "Order created",
	model.OrderStatusConfirmed:      "Order confirmed",
	model.OrderStatusPaymentPending: "Awaiting payment",
	model.OrderStatusPaid:           "Payment received",
	model.OrderStatusProcessing:     "Order is being processed",
	model.OrderStatusShipping:       "Order is on the way",
	model.OrderStatusDelivered:      "Order delivered",
	model.OrderStatusCompleted:      "Order completed",
	model.OrderStatusCancelled:      "Order cancelled",
}

// GenerateOrderCode builds a date-stamped, collision-resistant order code of
// the form ORD-YYYYMMDD-XXXX.
func GenerateOrderCode(now time.Time) string {
	id := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(id[:2]))
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// OrderUseCase manages the order fulfillment state machine and its audit
// trail.
type OrderUseCase struct {
	orders    repository.OrderRepository
	contracts repository.ContractRepository
	profiles  repository.ProfileRepository
	notifier  Notifier
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	contracts repository.ContractRepository,
	profiles repository.ProfileRepository,
	notifier Notifier,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, contracts: contracts, profiles: profiles, notifier: notifier, logger: logger}
}

// Create draws a new order against an active contract owned by the shop.
// Unit price is copied from the contract and the total is computed here;
// neither changes for the lifetime of the order.
func (u *OrderUseCase) Create(ctx context.Context, actor model.Actor, contractID int64, quantity int, shippingAddress, note string, method model.PaymentMethod) (*model.Order, error) {
	if actor.Role != model.RoleShop {
		return nil, domainErrors.ErrForbidden
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.ShopID != actor.ProfileID {
		return nil, domainErrors.ErrForbidden
	}
	if contract.Status != model.ContractStatusActive {
		return nil, fmt.Errorf("%w: contract is not active", domainErrors.ErrInvalidStateTransition)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrValidation)
	}
	if quantity > contract.Quantity {
		return nil, fmt.Errorf("%w: quantity exceeds contract quantity %d", domainErrors.ErrValidation, contract.Quantity)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method", domainErrors.ErrValidation)
	}

	order := &model.Order{
		Code:            GenerateOrderCode(time.Now()),
		ContractID:      contract.ID,
		SupplierID:      contract.SupplierID,
		ShopID:          contract.ShopID,
		Quantity:        quantity,
		UnitPrice:       contract.AgreedPrice,
		TotalAmount:     contract.AgreedPrice.Mul(decimal.NewFromInt(int64(quantity))),
		ShippingAddress: shippingAddress,
		Note:            note,
		PaymentMethod:   method,
		Status:          model.OrderStatusPending,
	}

	created, err := u.orders.Create(ctx, order, statusNotes[model.OrderStatusPending], actor.UserID)
	if err != nil {
		return nil, err
	}

	u.notifySupplier(ctx, created.SupplierID, model.NotificationOrderCreated,
		"New order", fmt.Sprintf("Order %s was placed against contract #%d", created.Code, contract.ID),
		"/supplier/orders")

	return created, nil
}

// Advance moves an order to the next status in the fulfillment sequence, or
// to Cancelled from any non-terminal state. Only the order's supplier may
// advance it. Entering Paid stamps paid_at unless already set.
func (u *OrderUseCase) Advance(ctx context.Context, actor model.Actor, orderID int64, newStatus model.OrderStatus, note string) (*model.Order, error) {
	if actor.Role != model.RoleSupplier {
		return nil, domainErrors.ErrForbidden
	}
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown order status", domainErrors.ErrValidation)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SupplierID != actor.ProfileID {
		return nil, domainErrors.ErrForbidden
	}
	if !order.Status.CanTransition(newStatus) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", domainErrors.ErrInvalidStateTransition, order.Status, newStatus)
	}

	if note == "" {
		note = statusNotes[newStatus]
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, order.Status, newStatus, note, actor.UserID)
	if err != nil {
		return nil, err
	}

	u.notifyShop(ctx, updated.ShopID, model.NotificationOrderUpdated,
		"Order updated", fmt.Sprintf("Order %s: %s", updated.Code, note),
		fmt.Sprintf("/shop/orders/%d", updated.ID))

	return updated, nil
}

// AttachPaymentProof stores the uploaded proof reference and forces the order
// to Paid regardless of its prior status; proof of payment is authoritative.
// paid_at is set once and never overwritten by later uploads.
func (u *OrderUseCase) AttachPaymentProof(ctx context.Context, actor model.Actor, orderID int64, proof string) (*model.Order, error) {
	if actor.Role != model.RoleShop {
		return nil, domainErrors.ErrForbidden
	}
	if proof == "" {
		return nil, fmt.Errorf("%w: missing payment proof reference", domainErrors.ErrValidation)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ShopID != actor.ProfileID {
		return nil, domainErrors.ErrForbidden
	}

	updated, err := u.orders.AttachPaymentProof(ctx, order.ID, proof, "Payment proof uploaded", actor.UserID)
	if err != nil {
		return nil, err
	}

	u.notifySupplier(ctx, updated.SupplierID, model.NotificationPaymentConfirmed,
		"Payment received", fmt.Sprintf("Order %s has been paid", updated.Code),
		fmt.Sprintf("/supplier/orders/%d", updated.ID))

	return updated, nil
}

// Get returns an order if the actor is one of its parties.
func (u *OrderUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !orderParty(order, actor) {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ListForActor returns the actor's orders, optionally filtered by status.
func (u *OrderUseCase) ListForActor(ctx context.Context, actor model.Actor, status *model.OrderStatus) ([]model.Order, error) {
	switch actor.Role {
	case model.RoleSupplier:
		return u.orders.ListBySupplier(ctx, actor.ProfileID, status)
	case model.RoleShop:
		return u.orders.ListByShop(ctx, actor.ProfileID, status)
	default:
		return nil, errors.New("unknown actor role")
	}
}

// Tracking returns the order's audit trail, oldest entry first.
func (u *OrderUseCase) Tracking(ctx context.Context, actor model.Actor, orderID int64) ([]model.OrderTracking, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !orderParty(order, actor) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.Tracking(ctx, order.ID)
}

func orderParty(order *model.Order, actor model.Actor) bool {
	switch actor.Role {
	case model.RoleSupplier:
		return order.SupplierID == actor.ProfileID
	case model.RoleShop:
		return order.ShopID == actor.ProfileID
	default:
		return false
	}
}

func (u *OrderUseCase) notifySupplier(ctx context.Context, supplierID int64, t model.NotificationType, title, message, link string) {
	supplier, err := u.profiles.GetSupplier(ctx, supplierID)
	if err != nil {
		u.logger.Warn("resolve supplier for notification failed",
			slog.Int64("supplier_id", supplierID), slog.String("error", err.Error()))
		return
	}
	u.notifier.Notify(supplier.UserID, t, title, message, link)
}

func (u *OrderUseCase) notifyShop(ctx context.Context, shopID int64, t model.NotificationType, title, message, link string) {
	shop, err := u.profiles.GetShop(ctx, shopID)
	if err != nil {
		u.logger.Warn("resolve shop for notification failed",
			slog.Int64("shop_id", shopID), slog.String("error", err.Error()))
		return
	}
	u.notifier.Notify(shop.UserID, t, title, message, link)
}
