package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/usecase"
)

// MarketplaceFacade is the single application surface handed to the HTTP
// layer. It delegates to the use cases without adding behavior.
type MarketplaceFacade struct {
	auth          *usecase.AuthUseCase
	products      *usecase.ProductUseCase
	rfqs          *usecase.RFQUseCase
	quotes        *usecase.QuoteUseCase
	contracts     *usecase.ContractUseCase
	orders        *usecase.OrderUseCase
	notifications *usecase.NotificationUseCase
}

// NewMarketplaceFacade constructs the facade.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	products *usecase.ProductUseCase,
	rfqs *usecase.RFQUseCase,
	quotes *usecase.QuoteUseCase,
	contracts *usecase.ContractUseCase,
	orders *usecase.OrderUseCase,
	notifications *usecase.NotificationUseCase,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:          auth,
		products:      products,
		rfqs:          rfqs,
		quotes:        quotes,
		contracts:     contracts,
		orders:        orders,
		notifications: notifications,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, name, role)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketplaceFacade) VerifyToken(token string) (model.Actor, error) {
	return f.auth.VerifyToken(token)
}

func (f *MarketplaceFacade) CreateProduct(ctx context.Context, actor model.Actor, name, description, category string, price decimal.Decimal) (*model.Product, error) {
	return f.products.Create(ctx, actor, name, description, category, price)
}

func (f *MarketplaceFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *MarketplaceFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *MarketplaceFacade) SupplierProducts(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	return f.products.ListMine(ctx, actor)
}

func (f *MarketplaceFacade) CreateRFQ(ctx context.Context, actor model.Actor, productID int64, quantity int, message string) (*model.RFQ, error) {
	return f.rfqs.Create(ctx, actor, productID, quantity, message)
}

func (f *MarketplaceFacade) RFQ(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error) {
	return f.rfqs.Get(ctx, actor, id)
}

func (f *MarketplaceFacade) RFQs(ctx context.Context, actor model.Actor) ([]model.RFQ, error) {
	return f.rfqs.ListForActor(ctx, actor)
}

func (f *MarketplaceFacade) RFQQuotes(ctx context.Context, actor model.Actor, rfqID int64) ([]model.Quote, error) {
	return f.rfqs.Quotes(ctx, actor, rfqID)
}

func (f *MarketplaceFacade) CloseRFQ(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error) {
	return f.rfqs.Close(ctx, actor, id)
}

func (f *MarketplaceFacade) SubmitQuote(ctx context.Context, actor model.Actor, rfqID int64, price decimal.Decimal, minOrderQty, leadTimeDays int, message string) (*model.Quote, error) {
	return f.quotes.Submit(ctx, actor, rfqID, price, minOrderQty, leadTimeDays, message)
}

func (f *MarketplaceFacade) AcceptQuote(ctx context.Context, actor model.Actor, quoteID int64) (*model.Contract, error) {
	return f.quotes.Accept(ctx, actor, quoteID)
}

func (f *MarketplaceFacade) RejectQuote(ctx context.Context, actor model.Actor, quoteID int64) (*model.Quote, error) {
	return f.quotes.Reject(ctx, actor, quoteID)
}

func (f *MarketplaceFacade) Quotes(ctx context.Context, actor model.Actor) ([]model.Quote, error) {
	return f.quotes.ListForActor(ctx, actor)
}

func (f *MarketplaceFacade) Contract(ctx context.Context, actor model.Actor, id int64) (*model.Contract, error) {
	return f.contracts.Get(ctx, actor, id)
}

func (f *MarketplaceFacade) Contracts(ctx context.Context, actor model.Actor) ([]model.Contract, error) {
	return f.contracts.ListForActor(ctx, actor)
}

func (f *MarketplaceFacade) CreateOrder(ctx context.Context, actor model.Actor, contractID int64, quantity int, shippingAddress, note string, method model.PaymentMethod) (*model.Order, error) {
	return f.orders.Create(ctx, actor, contractID, quantity, shippingAddress, note, method)
}

func (f *MarketplaceFacade) AdvanceOrder(ctx context.Context, actor model.Actor, orderID int64, status model.OrderStatus, note string) (*model.Order, error) {
	return f.orders.Advance(ctx, actor, orderID, status, note)
}

func (f *MarketplaceFacade) AttachPaymentProof(ctx context.Context, actor model.Actor, orderID int64, proof string) (*model.Order, error) {
	return f.orders.AttachPaymentProof(ctx, actor, orderID, proof)
}

func (f *MarketplaceFacade) Order(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, actor, id)
}

func (f *MarketplaceFacade) Orders(ctx context.Context, actor model.Actor, status *model.OrderStatus) ([]model.Order, error) {
	return f.orders.ListForActor(ctx, actor, status)
}

func (f *MarketplaceFacade) OrderTracking(ctx context.Context, actor model.Actor, orderID int64) ([]model.OrderTracking, error) {
	return f.orders.Tracking(ctx, actor, orderID)
}

func (f *MarketplaceFacade) Notifications(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	return f.notifications.List(ctx, userID, unreadOnly, limit)
}

func (f *MarketplaceFacade) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return f.notifications.UnreadCount(ctx, userID)
}

func (f *MarketplaceFacade) SetNotificationRead(ctx context.Context, userID, id int64, read bool) (*model.Notification, error) {
	return f.notifications.SetRead(ctx, userID, id, read)
}

func (f *MarketplaceFacade) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	return f.notifications.MarkAllRead(ctx, userID)
}

func (f *MarketplaceFacade) DeleteNotification(ctx context.Context, userID, id int64) error {
	return f.notifications.Delete(ctx, userID, id)
}
