package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// ContractRepository describes read access to contracts. Contract rows are
// written exclusively by QuoteRepository.Accept so that creation shares the
// acceptance transaction.
type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Contract, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]model.Contract, error)
	ListByShop(ctx context.Context, shopID int64) ([]model.Contract, error)
}
