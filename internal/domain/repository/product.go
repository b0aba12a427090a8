package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]model.Product, error)
}
