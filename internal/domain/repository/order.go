package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// OrderRepository describes persistence operations for orders and their
// audit trail. Every mutation appends a tracking row in the same transaction.
//
// UpdateStatus is guarded by the expected current status: when the order has
// moved in the meantime the update touches zero rows and the repository
// reports ErrInvalidStateTransition. Paid entry keeps an already-set paid_at
// untouched. AttachPaymentProof forces the order to Paid regardless of its
// current non-terminal status; proof of payment is authoritative.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order, note string, actorUserID int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListBySupplier(ctx context.Context, supplierID int64, status *model.OrderStatus) ([]model.Order, error)
	ListByShop(ctx context.Context, shopID int64, status *model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, note string, actorUserID int64) (*model.Order, error)
	AttachPaymentProof(ctx context.Context, orderID int64, proof, note string, actorUserID int64) (*model.Order, error)
	Tracking(ctx context.Context, orderID int64) ([]model.OrderTracking, error)
}
