package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, code, contract_id, supplier_id, shop_id, quantity, unit_price, total_amount,
                      shipping_address, note, payment_method, status, payment_proof, paid_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Code, &o.ContractID, &o.SupplierID, &o.ShopID, &o.Quantity,
		&o.UnitPrice, &o.TotalAmount, &o.ShippingAddress, &o.Note, &o.PaymentMethod,
		&o.Status, &o.PaymentProof, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Create inserts the order together with its first tracking row.
func (r *orderRepository) Create(ctx context.Context, order *model.Order, note string, actorUserID int64) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO orders (code, contract_id, supplier_id, shop_id, quantity, unit_price, total_amount,
                                            shipping_address, note, payment_method, status)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                        RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insert,
			created.Code, created.ContractID, created.SupplierID, created.ShopID,
			created.Quantity, created.UnitPrice, created.TotalAmount,
			created.ShippingAddress, created.Note, created.PaymentMethod, created.Status).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}
		return appendTrackingTx(ctx, tx, created.ID, created.Status, note, actorUserID)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListBySupplier(ctx context.Context, supplierID int64, status *model.OrderStatus) ([]model.Order, error) {
	return r.listByParty(ctx, "supplier_id", supplierID, status)
}

func (r *orderRepository) ListByShop(ctx context.Context, shopID int64, status *model.OrderStatus) ([]model.Order, error) {
	return r.listByParty(ctx, "shop_id", shopID, status)
}

func (r *orderRepository) listByParty(ctx context.Context, column string, partyID int64, status *model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + column + `=$1`
	args := []any{partyID}
	if status != nil {
		query += ` AND status=$2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Code, &o.ContractID, &o.SupplierID, &o.ShopID, &o.Quantity,
			&o.UnitPrice, &o.TotalAmount, &o.ShippingAddress, &o.Note, &o.PaymentMethod,
			&o.Status, &o.PaymentProof, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus is guarded by the expected current status; a concurrent move
// makes the update touch zero rows. Entering paid stamps paid_at once and
// keeps an earlier stamp via COALESCE.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, note string, actorUserID int64) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders
                        SET status=$1,
                            paid_at=CASE WHEN $1='paid' THEN COALESCE(paid_at, NOW()) ELSE paid_at END,
                            updated_at=NOW()
                        WHERE id=$2 AND status=$3
                        RETURNING ` + orderColumns
		o, err := scanOrder(tx.QueryRow(ctx, update, to, orderID, from))
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return domainErrors.ErrInvalidStateTransition
			}
			return err
		}
		updated = o
		return appendTrackingTx(ctx, tx, orderID, to, note, actorUserID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AttachPaymentProof forces the order to paid regardless of its current
// status; the first paid_at stamp wins.
func (r *orderRepository) AttachPaymentProof(ctx context.Context, orderID int64, proof, note string, actorUserID int64) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders
                        SET payment_proof=$1,
                            status='paid',
                            paid_at=COALESCE(paid_at, NOW()),
                            updated_at=NOW()
                        WHERE id=$2
                        RETURNING ` + orderColumns
		o, err := scanOrder(tx.QueryRow(ctx, update, proof, orderID))
		if err != nil {
			return err
		}
		updated = o
		return appendTrackingTx(ctx, tx, orderID, model.OrderStatusPaid, note, actorUserID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) Tracking(ctx context.Context, orderID int64) ([]model.OrderTracking, error) {
	const query = `SELECT id, order_id, status, note, updated_by, created_at
                   FROM order_tracking WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderTracking
	for rows.Next() {
		var tr model.OrderTracking
		if err := rows.Scan(&tr.ID, &tr.OrderID, &tr.Status, &tr.Note, &tr.UpdatedBy, &tr.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func appendTrackingTx(ctx context.Context, tx pgx.Tx, orderID int64, status model.OrderStatus, note string, actorUserID int64) error {
	const insert = `INSERT INTO order_tracking (order_id, status, note, updated_by) VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, insert, orderID, status, note, actorUserID)
	return err
}
