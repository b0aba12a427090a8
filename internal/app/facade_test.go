package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	pkgAuth "github.com/minhvn/sourcehub/internal/pkg/auth"
	testhelpers "github.com/minhvn/sourcehub/internal/test"
	"github.com/minhvn/sourcehub/internal/usecase"
)

type facadeFixture struct {
	facade        *MarketplaceFacade
	users         *testhelpers.UserRepositoryStub
	profiles      *testhelpers.ProfileRepositoryStub
	products      *testhelpers.ProductRepositoryStub
	rfqs          *testhelpers.RFQRepositoryStub
	quotes        *testhelpers.QuoteRepositoryStub
	contracts     *testhelpers.ContractRepositoryStub
	orders        *testhelpers.OrderRepositoryStub
	notifications *testhelpers.NotificationRepositoryStub
	notifier      *testhelpers.NotifierRecorder
}

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	profiles := testhelpers.NewProfileRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	rfqs := testhelpers.NewRFQRepositoryStub()
	contracts := testhelpers.NewContractRepositoryStub()
	quotes := testhelpers.NewQuoteRepositoryStub(rfqs, profiles, contracts)
	orders := testhelpers.NewOrderRepositoryStub()
	notifications := testhelpers.NewNotificationRepositoryStub()
	notifier := &testhelpers.NotifierRecorder{}

	strategy := pkgAuth.NewHMACStrategy("facade-secret", pkgAuth.Options{})
	facade := NewMarketplaceFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy),
		usecase.NewProductUseCase(products),
		usecase.NewRFQUseCase(rfqs, quotes, products, profiles, notifier, logger),
		usecase.NewQuoteUseCase(quotes, rfqs, profiles, notifier, logger),
		usecase.NewContractUseCase(contracts),
		usecase.NewOrderUseCase(orders, contracts, profiles, notifier, logger),
		usecase.NewNotificationUseCase(notifications),
	)
	return &facadeFixture{
		facade:        facade,
		users:         users,
		profiles:      profiles,
		products:      products,
		rfqs:          rfqs,
		quotes:        quotes,
		contracts:     contracts,
		orders:        orders,
		notifications: notifications,
		notifier:      notifier,
	}
}

func TestMarketplaceFacadeAuth(t *testing.T) {
	f := newFacadeFixture()

	user, token, err := f.facade.Register(context.Background(), "shop@example.com", "pass", "Corner Shop", model.RoleShop)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected issued token")
	}

	stored, err := f.users.GetByEmail(context.Background(), "shop@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Role != model.RoleShop {
		t.Fatalf("unexpected stored role %q", stored.Role)
	}

	if _, token, err = f.facade.Authenticate(context.Background(), "shop@example.com", "pass"); err != nil || token == "" {
		t.Fatalf("authenticate failed: token=%q err=%v", token, err)
	}

	actor, err := f.facade.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token returned error: %v", err)
	}
	if actor.UserID != user.ID || actor.Role != model.RoleShop || actor.ProfileID != user.ProfileID {
		t.Fatalf("unexpected actor %+v", actor)
	}

	if _, err := f.facade.VerifyToken("garbage"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestMarketplaceFacadeSourcingFlow(t *testing.T) {
	f := newFacadeFixture()
	shop := model.Actor{UserID: 100, Role: model.RoleShop, ProfileID: 10}
	supplier := model.Actor{UserID: 200, Role: model.RoleSupplier, ProfileID: 20}
	f.profiles.AddShop(10, 100)
	f.profiles.AddSupplier(20, 200)

	product, err := f.facade.CreateProduct(context.Background(), supplier, "Arabica beans", "single origin", "coffee", decimal.NewFromFloat(4.20))
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}

	rfq, err := f.facade.CreateRFQ(context.Background(), shop, product.ID, 50, "monthly restock")
	if err != nil {
		t.Fatalf("create rfq returned error: %v", err)
	}
	if calls := f.notifier.ByType(model.NotificationRFQReceived); len(calls) != 1 || calls[0].UserID != 200 {
		t.Fatalf("expected rfq_received notification for supplier user, got %+v", calls)
	}

	quote, err := f.facade.SubmitQuote(context.Background(), supplier, rfq.ID, decimal.NewFromFloat(3.90), 10, 7, "bulk rate")
	if err != nil {
		t.Fatalf("submit quote returned error: %v", err)
	}

	contract, err := f.facade.AcceptQuote(context.Background(), shop, quote.ID)
	if err != nil {
		t.Fatalf("accept quote returned error: %v", err)
	}
	if got := f.rfqs.RFQs[rfq.ID].Status; got != model.RFQStatusClosed {
		t.Fatalf("expected closed rfq after acceptance, got %s", got)
	}
	if contract.SupplierID != supplier.ProfileID || contract.ShopID != shop.ProfileID {
		t.Fatalf("unexpected contract parties: %+v", contract)
	}

	fetched, err := f.facade.Contract(context.Background(), shop, contract.ID)
	if err != nil || fetched.ID != contract.ID {
		t.Fatalf("contract lookup failed: %v err=%v", fetched, err)
	}

	quotes, err := f.facade.RFQQuotes(context.Background(), shop, rfq.ID)
	if err != nil || len(quotes) != 1 {
		t.Fatalf("expected one quote on rfq, got %v err=%v", quotes, err)
	}
}

func TestMarketplaceFacadeOrders(t *testing.T) {
	f := newFacadeFixture()
	shop := model.Actor{UserID: 100, Role: model.RoleShop, ProfileID: 10}
	supplier := model.Actor{UserID: 200, Role: model.RoleSupplier, ProfileID: 20}
	f.profiles.AddShop(10, 100)
	f.profiles.AddSupplier(20, 200)
	contract := f.contracts.Add(&model.Contract{
		SupplierID:  20,
		ShopID:      10,
		ProductID:   3,
		AgreedPrice: decimal.NewFromFloat(2.50),
		Quantity:    100,
		Status:      model.ContractStatusActive,
	})

	order, err := f.facade.CreateOrder(context.Background(), shop, contract.ID, 40, "12 Market St", "", model.PaymentMethodBankTransfer)
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}

	advanced, err := f.facade.AdvanceOrder(context.Background(), supplier, order.ID, model.OrderStatusConfirmed, "stock reserved")
	if err != nil {
		t.Fatalf("advance order returned error: %v", err)
	}
	if advanced.Status != model.OrderStatusConfirmed {
		t.Fatalf("expected confirmed order, got %s", advanced.Status)
	}

	if _, err := f.facade.AdvanceOrder(context.Background(), supplier, order.ID, model.OrderStatusDelivered, ""); !errors.Is(err, domainErrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid transition error, got %v", err)
	}

	trail, err := f.facade.OrderTracking(context.Background(), shop, order.ID)
	if err != nil || len(trail) != 2 {
		t.Fatalf("expected two tracking rows, got %v err=%v", trail, err)
	}

	status := model.OrderStatusConfirmed
	listed, err := f.facade.Orders(context.Background(), shop, &status)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one confirmed order, got %v err=%v", listed, err)
	}
}

func TestMarketplaceFacadeNotifications(t *testing.T) {
	f := newFacadeFixture()
	seeded, err := f.notifications.Create(context.Background(), &model.Notification{
		UserID:  7,
		Type:    model.NotificationOrderCreated,
		Title:   "New order",
		Message: "ORD-1 placed",
	})
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	count, err := f.facade.UnreadCount(context.Background(), 7)
	if err != nil || count != 1 {
		t.Fatalf("expected one unread, got %d err=%v", count, err)
	}

	updated, err := f.facade.SetNotificationRead(context.Background(), 7, seeded.ID, true)
	if err != nil || !updated.IsRead {
		t.Fatalf("set read failed: %v err=%v", updated, err)
	}

	items, err := f.facade.Notifications(context.Background(), 7, false, 10)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one notification, got %v err=%v", items, err)
	}

	if err := f.facade.DeleteNotification(context.Background(), 7, seeded.ID); err != nil {
		t.Fatalf("delete notification: %v", err)
	}
	if _, err := f.facade.SetNotificationRead(context.Background(), 7, seeded.ID, false); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
