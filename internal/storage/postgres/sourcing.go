package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

type rfqRepository struct {
	storage *Storage
}

type quoteRepository struct {
	storage *Storage
}

const rfqColumns = `id, shop_id, product_id, quantity, message, status, created_at`

func (r *rfqRepository) Create(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error) {
	const query = `INSERT INTO rfqs (shop_id, product_id, quantity, message, status)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *rfq
	err := r.storage.pool.QueryRow(ctx, query, created.ShopID, created.ProductID, created.Quantity, created.Message, created.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *rfqRepository) GetByID(ctx context.Context, id int64) (*model.RFQ, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs WHERE id=$1`
	var rfq model.RFQ
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&rfq.ID, &rfq.ShopID, &rfq.ProductID, &rfq.Quantity, &rfq.Message, &rfq.Status, &rfq.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rfq, nil
}

func (r *rfqRepository) ListByShop(ctx context.Context, shopID int64) ([]model.RFQ, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs WHERE shop_id=$1 ORDER BY created_at DESC`
	return r.queryRFQs(ctx, query, shopID)
}

// ListForSupplier returns requests targeting the supplier's products.
func (r *rfqRepository) ListForSupplier(ctx context.Context, supplierID int64) ([]model.RFQ, error) {
	query := `SELECT r.id, r.shop_id, r.product_id, r.quantity, r.message, r.status, r.created_at
              FROM rfqs r
              JOIN products p ON p.id = r.product_id
              WHERE p.supplier_id=$1 ORDER BY r.created_at DESC`
	return r.queryRFQs(ctx, query, supplierID)
}

// Close is guarded by the current status: a second close touches zero rows.
func (r *rfqRepository) Close(ctx context.Context, id int64) (*model.RFQ, error) {
	const query = `UPDATE rfqs SET status='closed' WHERE id=$1 AND status <> 'closed'
                   RETURNING ` + rfqColumns
	var rfq model.RFQ
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&rfq.ID, &rfq.ShopID, &rfq.ProductID, &rfq.Quantity, &rfq.Message, &rfq.Status, &rfq.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domainErrors.ErrInvalidStateTransition
		}
		return nil, err
	}
	return &rfq, nil
}

func (r *rfqRepository) queryRFQs(ctx context.Context, query string, args ...any) ([]model.RFQ, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RFQ
	for rows.Next() {
		var rfq model.RFQ
		if err := rows.Scan(&rfq.ID, &rfq.ShopID, &rfq.ProductID, &rfq.Quantity, &rfq.Message, &rfq.Status, &rfq.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rfq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const quoteColumns = `id, rfq_id, supplier_id, price, min_order_qty, lead_time_days, message, status, created_at`

// Create inserts the quote and bumps a pending parent RFQ in one
// transaction, so the first quote always flips Pending to Quoted exactly
// once. The insert is conditioned on the RFQ not being closed, so a close
// that lands between the caller's read and this write cannot gain a quote.
func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	created := *quote
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO quotes (rfq_id, supplier_id, price, min_order_qty, lead_time_days, message, status)
                        SELECT $1, $2, $3, $4, $5, $6, $7
                        WHERE EXISTS (SELECT 1 FROM rfqs WHERE id=$1 AND status <> 'closed')
                        RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insert,
			created.RFQID, created.SupplierID, created.Price,
			created.MinOrderQty, created.LeadTimeDays, created.Message, created.Status).
			Scan(&created.ID, &created.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrInvalidStateTransition
			}
			return err
		}

		_, err := tx.Exec(ctx, `UPDATE rfqs SET status='quoted' WHERE id=$1 AND status='pending'`, created.RFQID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id=$1`
	var q model.Quote
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&q.ID, &q.RFQID, &q.SupplierID, &q.Price, &q.MinOrderQty, &q.LeadTimeDays, &q.Message, &q.Status, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *quoteRepository) ListByRFQ(ctx context.Context, rfqID int64) ([]model.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE rfq_id=$1 ORDER BY created_at`
	return r.queryQuotes(ctx, query, rfqID)
}

func (r *quoteRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]model.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE supplier_id=$1 ORDER BY created_at DESC`
	return r.queryQuotes(ctx, query, supplierID)
}

func (r *quoteRepository) ListByShop(ctx context.Context, shopID int64) ([]model.Quote, error) {
	query := `SELECT q.id, q.rfq_id, q.supplier_id, q.price, q.min_order_qty, q.lead_time_days, q.message, q.status, q.created_at
              FROM quotes q
              JOIN rfqs r ON r.id = q.rfq_id
              WHERE r.shop_id=$1 ORDER BY q.created_at DESC`
	return r.queryQuotes(ctx, query, shopID)
}

// Accept applies the whole arbitration in one transaction. The RFQ row is
// locked first so concurrent accepts of different quotes under one RFQ
// serialize there instead of deadlocking on each other's quote rows; the
// winner update is then conditioned on the quote still being pending, so the
// loser touches zero rows and rolls back with ErrInvalidStateTransition.
func (r *quoteRepository) Accept(ctx context.Context, quote *model.Quote, contract *model.Contract) (*repository.AcceptResult, error) {
	result := repository.AcceptResult{Contract: *contract}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var lockedRFQ int64
		if err := tx.QueryRow(ctx, `SELECT id FROM rfqs WHERE id=$1 FOR UPDATE`, quote.RFQID).Scan(&lockedRFQ); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const acceptWinner = `UPDATE quotes SET status='accepted'
                              WHERE id=$1 AND status='pending'
                              RETURNING ` + quoteColumns
		err := tx.QueryRow(ctx, acceptWinner, quote.ID).Scan(
			&result.Quote.ID, &result.Quote.RFQID, &result.Quote.SupplierID,
			&result.Quote.Price, &result.Quote.MinOrderQty, &result.Quote.LeadTimeDays,
			&result.Quote.Message, &result.Quote.Status, &result.Quote.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrInvalidStateTransition
			}
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE rfqs SET status='closed' WHERE id=$1`, result.Quote.RFQID); err != nil {
			return err
		}

		const rejectSiblings = `UPDATE quotes q SET status='rejected'
                                FROM suppliers s
                                WHERE q.rfq_id=$1 AND q.id <> $2 AND q.status='pending' AND s.id = q.supplier_id
                                RETURNING q.id, q.supplier_id, s.user_id`
		rows, err := tx.Query(ctx, rejectSiblings, result.Quote.RFQID, result.Quote.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var sibling repository.RejectedSibling
			if err := rows.Scan(&sibling.QuoteID, &sibling.SupplierID, &sibling.SupplierUserID); err != nil {
				return err
			}
			result.Rejected = append(result.Rejected, sibling)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		const insertContract = `INSERT INTO contracts (supplier_id, shop_id, product_id, agreed_price, quantity, start_date, end_date, status)
                                VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
		c := &result.Contract
		if err := tx.QueryRow(ctx, insertContract,
			c.SupplierID, c.ShopID, c.ProductID, c.AgreedPrice, c.Quantity, c.StartDate, c.EndDate, c.Status).
			Scan(&c.ID, &c.CreatedAt); err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, `SELECT user_id FROM suppliers WHERE id=$1`, c.SupplierID).Scan(&result.SupplierUserID); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT user_id FROM shops WHERE id=$1`, c.ShopID).Scan(&result.ShopUserID)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Reject is guarded the same way as Accept: only a pending quote can move.
func (r *quoteRepository) Reject(ctx context.Context, id int64) (*model.Quote, error) {
	const query = `UPDATE quotes SET status='rejected'
                   WHERE id=$1 AND status='pending'
                   RETURNING ` + quoteColumns
	var q model.Quote
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&q.ID, &q.RFQID, &q.SupplierID, &q.Price, &q.MinOrderQty, &q.LeadTimeDays, &q.Message, &q.Status, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domainErrors.ErrInvalidStateTransition
		}
		return nil, err
	}
	return &q, nil
}

func (r *quoteRepository) queryQuotes(ctx context.Context, query string, args ...any) ([]model.Quote, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(&q.ID, &q.RFQID, &q.SupplierID, &q.Price, &q.MinOrderQty, &q.LeadTimeDays, &q.Message, &q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
