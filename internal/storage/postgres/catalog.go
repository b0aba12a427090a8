package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

const productColumns = `id, supplier_id, name, description, price, category, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SupplierID, &p.Name, &p.Description, &p.Price, &p.Category, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (supplier_id, name, description, price, category)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	p := *product
	err := r.storage.pool.QueryRow(ctx, query, p.SupplierID, p.Name, p.Description, p.Price, p.Category).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id=$1 ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, supplierID)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.Name, &p.Description, &p.Price, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
