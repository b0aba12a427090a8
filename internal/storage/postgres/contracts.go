package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
)

// contractRepository is read-only: contract rows are written exclusively by
// quoteRepository.Accept inside the acceptance transaction.
type contractRepository struct {
	storage *Storage
}

const contractColumns = `id, supplier_id, shop_id, product_id, agreed_price, quantity, start_date, end_date, status, created_at`

func (r *contractRepository) GetByID(ctx context.Context, id int64) (*model.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id=$1`
	var c model.Contract
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.SupplierID, &c.ShopID, &c.ProductID, &c.AgreedPrice, &c.Quantity, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contractRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]model.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE supplier_id=$1 ORDER BY created_at DESC`
	return r.queryContracts(ctx, query, supplierID)
}

func (r *contractRepository) ListByShop(ctx context.Context, shopID int64) ([]model.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE shop_id=$1 ORDER BY created_at DESC`
	return r.queryContracts(ctx, query, shopID)
}

func (r *contractRepository) queryContracts(ctx context.Context, query string, args ...any) ([]model.Contract, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Contract
	for rows.Next() {
		var c model.Contract
		if err := rows.Scan(&c.ID, &c.SupplierID, &c.ShopID, &c.ProductID, &c.AgreedPrice, &c.Quantity, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
