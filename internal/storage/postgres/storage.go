package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage uses; tests substitute a
// mock pool.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ repository.Factory = (*Storage)(nil)

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Profiles() repository.ProfileRepository {
	return &profileRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) RFQs() repository.RFQRepository {
	return &rfqRepository{storage: s}
}

func (s *Storage) Quotes() repository.QuoteRepository {
	return &quoteRepository{storage: s}
}

func (s *Storage) Contracts() repository.ContractRepository {
	return &contractRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS suppliers (
            id SERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            company_name TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS shops (
            id SERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            shop_name TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(12,2) NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS rfqs (
            id SERIAL PRIMARY KEY,
            shop_id BIGINT NOT NULL REFERENCES shops(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity INTEGER NOT NULL,
            message TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS quotes (
            id SERIAL PRIMARY KEY,
            rfq_id BIGINT NOT NULL REFERENCES rfqs(id),
            supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
            price NUMERIC(12,2) NOT NULL,
            min_order_qty INTEGER NOT NULL DEFAULT 0,
            lead_time_days INTEGER NOT NULL DEFAULT 0,
            message TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS contracts (
            id SERIAL PRIMARY KEY,
            supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
            shop_id BIGINT NOT NULL REFERENCES shops(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            agreed_price NUMERIC(12,2) NOT NULL,
            quantity INTEGER NOT NULL,
            start_date TIMESTAMPTZ NOT NULL,
            end_date TIMESTAMPTZ NOT NULL,
            status TEXT NOT NULL DEFAULT 'active',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            contract_id BIGINT NOT NULL REFERENCES contracts(id),
            supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
            shop_id BIGINT NOT NULL REFERENCES shops(id),
            quantity INTEGER NOT NULL,
            unit_price NUMERIC(12,2) NOT NULL,
            total_amount NUMERIC(14,2) NOT NULL,
            shipping_address TEXT NOT NULL DEFAULT '',
            note TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            payment_proof TEXT NOT NULL DEFAULT '',
            paid_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_tracking (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            note TEXT NOT NULL DEFAULT '',
            updated_by BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            title TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL DEFAULT '',
            link TEXT NOT NULL DEFAULT '',
            is_read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rfqs_shop ON rfqs(shop_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rfqs_product ON rfqs(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_rfq ON quotes(rfq_id)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_supplier ON quotes(supplier_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_contracts_supplier ON contracts(supplier_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_contracts_shop ON contracts(shop_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_supplier ON orders(supplier_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_shop ON orders(shop_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_tracking_order ON order_tracking(order_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes the underlying connection pool for advanced use.
func (s *Storage) Pool() dbPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
