package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// ProductUseCase manages the supplier catalog that RFQs reference.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create adds a catalog entry owned by the acting supplier.
func (u *ProductUseCase) Create(ctx context.Context, actor model.Actor, name, description, category string, price decimal.Decimal) (*model.Product, error) {
	if actor.Role != model.RoleSupplier {
		return nil, domainErrors.ErrForbidden
	}
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}

	return u.products.Create(ctx, &model.Product{
		SupplierID:  actor.ProfileID,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
	})
}

// Get returns a catalog entry by id.
func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns the whole catalog, newest first.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// ListMine returns the acting supplier's catalog entries.
func (u *ProductUseCase) ListMine(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	if actor.Role != model.RoleSupplier {
		return nil, domainErrors.ErrForbidden
	}
	return u.products.ListBySupplier(ctx, actor.ProfileID)
}
