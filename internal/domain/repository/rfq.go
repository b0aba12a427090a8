package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// RFQRepository describes persistence operations for sourcing requests.
// Close performs a guarded update: it succeeds only while the RFQ is not yet
// closed and reports ErrInvalidStateTransition otherwise.
type RFQRepository interface {
	Create(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error)
	GetByID(ctx context.Context, id int64) (*model.RFQ, error)
	ListByShop(ctx context.Context, shopID int64) ([]model.RFQ, error)
	ListForSupplier(ctx context.Context, supplierID int64) ([]model.RFQ, error)
	Close(ctx context.Context, id int64) (*model.RFQ, error)
}
