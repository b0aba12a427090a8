package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/fx/fxtest"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func TestNewParseError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), ":://bad", logger); err == nil {
		t.Fatal("expected error")
	}
}

func TestUserCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("shop@example.com", "hash", "Corner Shop", model.RoleShop).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
	mock.ExpectQuery("INSERT INTO shops").
		WithArgs(int64(1), "Corner Shop").
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	user, err := storage.Users().Create(context.Background(), "shop@example.com", "hash", "Corner Shop", model.RoleShop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.ProfileID != 7 || user.Role != model.RoleShop {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserCreateSupplierProfile(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("acme@example.com", "hash", "Acme", model.RoleSupplier).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))
	mock.ExpectQuery("INSERT INTO suppliers").
		WithArgs(int64(2), "Acme").
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	user, err := storage.Users().Create(context.Background(), "acme@example.com", "hash", "Acme", model.RoleSupplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ProfileID != 3 {
		t.Fatalf("expected supplier profile id 3, got %d", user.ProfileID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT u.id, u.email").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Users().GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func quoteRow(id, rfqID, supplierID int64, status model.QuoteStatus) *pgxmockv3.Rows {
	return pgxmockv3.NewRows([]string{"id", "rfq_id", "supplier_id", "price", "min_order_qty", "lead_time_days", "message", "status", "created_at"}).
		AddRow(id, rfqID, supplierID, decimal.NewFromInt(5), 10, 7, "", status, time.Now())
}

func TestQuoteCreateBumpsRFQ(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO quotes").
		WithArgs(int64(2), int64(3), decimal.NewFromInt(5), 0, 0, "", model.QuoteStatusPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(4), time.Now()))
	mock.ExpectExec("UPDATE rfqs SET status='quoted'").
		WithArgs(int64(2)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	quote, err := storage.Quotes().Create(context.Background(), &model.Quote{
		RFQID:      2,
		SupplierID: 3,
		Price:      decimal.NewFromInt(5),
		Status:     model.QuoteStatusPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.ID != 4 {
		t.Fatalf("expected quote id 4, got %d", quote.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteCreateClosedRFQ(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	// The guarded insert touches zero rows when the RFQ closed after the
	// caller's read.
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO quotes").
		WithArgs(int64(2), int64(3), decimal.NewFromInt(5), 0, 0, "", model.QuoteStatusPending).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Quotes().Create(context.Background(), &model.Quote{
		RFQID:      2,
		SupplierID: 3,
		Price:      decimal.NewFromInt(5),
		Status:     model.QuoteStatusPending,
	})
	if !errors.Is(err, domainErrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteAccept(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rfqs").
		WithArgs(int64(2)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery("UPDATE quotes SET status='accepted'").
		WithArgs(int64(4)).
		WillReturnRows(quoteRow(4, 2, 3, model.QuoteStatusAccepted))
	mock.ExpectExec("UPDATE rfqs SET status='closed'").
		WithArgs(int64(2)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("UPDATE quotes q SET status='rejected'").
		WithArgs(int64(2), int64(4)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "supplier_id", "user_id"}).
			AddRow(int64(5), int64(9), int64(90)))
	mock.ExpectQuery("INSERT INTO contracts").
		WithArgs(int64(3), int64(8), int64(6), decimal.NewFromInt(5), 40, now, now.Add(model.DefaultContractTerm), model.ContractStatusActive).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))
	mock.ExpectQuery("SELECT user_id FROM suppliers").
		WithArgs(int64(3)).
		WillReturnRows(pgxmockv3.NewRows([]string{"user_id"}).AddRow(int64(30)))
	mock.ExpectQuery("SELECT user_id FROM shops").
		WithArgs(int64(8)).
		WillReturnRows(pgxmockv3.NewRows([]string{"user_id"}).AddRow(int64(80)))
	mock.ExpectCommit()

	contract := &model.Contract{
		SupplierID:  3,
		ShopID:      8,
		ProductID:   6,
		AgreedPrice: decimal.NewFromInt(5),
		Quantity:    40,
		StartDate:   now,
		EndDate:     now.Add(model.DefaultContractTerm),
		Status:      model.ContractStatusActive,
	}
	result, err := storage.Quotes().Accept(context.Background(), &model.Quote{ID: 4, RFQID: 2}, contract)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Contract.ID != 11 {
		t.Fatalf("expected contract id 11, got %d", result.Contract.ID)
	}
	if result.SupplierUserID != 30 || result.ShopUserID != 80 {
		t.Fatalf("unexpected party users: %+v", result)
	}
	if len(result.Rejected) != 1 || result.Rejected[0].SupplierUserID != 90 {
		t.Fatalf("unexpected rejected siblings: %+v", result.Rejected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteAcceptLostRace(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rfqs").
		WithArgs(int64(2)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery("UPDATE quotes SET status='accepted'").
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Quotes().Accept(context.Background(), &model.Quote{ID: 4, RFQID: 2}, &model.Contract{})
	if !errors.Is(err, domainErrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteAcceptMissingRFQ(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM rfqs").
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Quotes().Accept(context.Background(), &model.Quote{ID: 4, RFQID: 2}, &model.Contract{})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteRejectAlreadyProcessed(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE quotes SET status='rejected'").
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id, rfq_id, supplier_id").
		WithArgs(int64(4)).
		WillReturnRows(quoteRow(4, 2, 3, model.QuoteStatusAccepted))

	_, err := storage.Quotes().Reject(context.Background(), 4)
	if !errors.Is(err, domainErrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
}

func TestRFQCloseAlreadyClosed(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE rfqs SET status='closed'").
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id, shop_id, product_id").
		WithArgs(int64(2)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "shop_id", "product_id", "quantity", "message", "status", "created_at"}).
			AddRow(int64(2), int64(8), int64(6), 40, "", model.RFQStatusClosed, time.Now()))

	_, err := storage.RFQs().Close(context.Background(), 2)
	if !errors.Is(err, domainErrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
}

func TestRFQCloseMissing(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE rfqs SET status='closed'").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id, shop_id, product_id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.RFQs().Close(context.Background(), 99)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func orderRow(id int64, status model.OrderStatus, paidAt *time.Time) *pgxmockv3.Rows {
	now := time.Now()
	return pgxmockv3.NewRows([]string{
		"id", "code", "contract_id", "supplier_id", "shop_id", "quantity", "unit_price", "total_amount",
		"shipping_address", "note", "payment_method", "status", "payment_proof", "paid_at", "created_at", "updated_at",
	}).AddRow(id, "ORD-20250101-AB12", int64(11), int64(3), int64(8), 40,
		decimal.NewFromInt(5), decimal.NewFromInt(200), "addr", "", model.PaymentMethodBankTransfer,
		status, "", paidAt, now, now)
}

func TestOrderCreateWithTracking(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("ORD-20250101-AB12", int64(11), int64(3), int64(8), 40,
			decimal.NewFromInt(5), decimal.NewFromInt(200), "", "",
			model.PaymentMethodBankTransfer, model.OrderStatusPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(21), now, now))
	mock.ExpectExec("INSERT INTO order_tracking").
		WithArgs(int64(21), model.OrderStatusPending, "Order created", int64(80)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	order, err := storage.Orders().Create(context.Background(), &model.Order{
		Code:          "ORD-20250101-AB12",
		ContractID:    11,
		SupplierID:    3,
		ShopID:        8,
		Quantity:      40,
		UnitPrice:     decimal.NewFromInt(5),
		TotalAmount:   decimal.NewFromInt(200),
		PaymentMethod: model.PaymentMethodBankTransfer,
		Status:        model.OrderStatusPending,
	}, "Order created", 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 21 {
		t.Fatalf("expected order id 21, got %d", order.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatusGuarded(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders").
		WithArgs(model.OrderStatusConfirmed, int64(21), model.OrderStatusPending).
		WillReturnRows(orderRow(21, model.OrderStatusConfirmed, nil))
	mock.ExpectExec("INSERT INTO order_tracking").
		WithArgs(int64(21), model.OrderStatusConfirmed, "Order confirmed", int64(30)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	order, err := storage.Orders().UpdateStatus(context.Background(), 21, model.OrderStatusPending, model.OrderStatusConfirmed, "Order confirmed", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", order.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatusLostRace(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders").
		WithArgs(model.OrderStatusConfirmed, int64(21), model.OrderStatusPending).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Orders().UpdateStatus(context.Background(), 21, model.OrderStatusPending, model.OrderStatusConfirmed, "", 30)
	if !errors.Is(err, domainErrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderAttachPaymentProof(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	paidAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders").
		WithArgs("uploads/proof.jpg", int64(21)).
		WillReturnRows(orderRow(21, model.OrderStatusPaid, &paidAt))
	mock.ExpectExec("INSERT INTO order_tracking").
		WithArgs(int64(21), model.OrderStatusPaid, "Payment proof uploaded", int64(80)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	order, err := storage.Orders().AttachPaymentProof(context.Background(), 21, "uploads/proof.jpg", "Payment proof uploaded", 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPaid || order.PaidAt == nil {
		t.Fatalf("expected paid order with paid_at, got %+v", order)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNotificationDeleteNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM notifications").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))

	err := storage.Notifications().Delete(context.Background(), 5, 1)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNotificationSetReadOwnerScoped(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE notifications SET is_read").
		WithArgs(true, int64(5), int64(2)).
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Notifications().SetRead(context.Background(), 5, 2, true)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := storage.WithinTransaction(context.Background(), func(tx pgx.Tx) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing().WillReturnError(errors.New("ping"))
	if err := storage.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestRegisterLifecycle(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, storage)

	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	mock.ExpectClose()
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
