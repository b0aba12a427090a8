package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	VerifyToken(token string) (model.Actor, error)
}

// ProductFacade encapsulates catalog operations exposed via HTTP.
type ProductFacade interface {
	CreateProduct(ctx context.Context, actor model.Actor, name, description, category string, price decimal.Decimal) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	SupplierProducts(ctx context.Context, actor model.Actor) ([]model.Product, error)
}

// RFQFacade encapsulates sourcing request operations.
type RFQFacade interface {
	CreateRFQ(ctx context.Context, actor model.Actor, productID int64, quantity int, message string) (*model.RFQ, error)
	RFQ(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error)
	RFQs(ctx context.Context, actor model.Actor) ([]model.RFQ, error)
	RFQQuotes(ctx context.Context, actor model.Actor, rfqID int64) ([]model.Quote, error)
	CloseRFQ(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error)
}

// QuoteFacade encapsulates quote operations.
type QuoteFacade interface {
	SubmitQuote(ctx context.Context, actor model.Actor, rfqID int64, price decimal.Decimal, minOrderQty, leadTimeDays int, message string) (*model.Quote, error)
	AcceptQuote(ctx context.Context, actor model.Actor, quoteID int64) (*model.Contract, error)
	RejectQuote(ctx context.Context, actor model.Actor, quoteID int64) (*model.Quote, error)
	Quotes(ctx context.Context, actor model.Actor) ([]model.Quote, error)
}

// ContractFacade encapsulates contract reads.
type ContractFacade interface {
	Contract(ctx context.Context, actor model.Actor, id int64) (*model.Contract, error)
	Contracts(ctx context.Context, actor model.Actor) ([]model.Contract, error)
}

// OrderFacade encapsulates order fulfillment operations.
type OrderFacade interface {
	CreateOrder(ctx context.Context, actor model.Actor, contractID int64, quantity int, shippingAddress, note string, method model.PaymentMethod) (*model.Order, error)
	AdvanceOrder(ctx context.Context, actor model.Actor, orderID int64, status model.OrderStatus, note string) (*model.Order, error)
	AttachPaymentProof(ctx context.Context, actor model.Actor, orderID int64, proof string) (*model.Order, error)
	Order(ctx context.Context, actor model.Actor, id int64) (*model.Order, error)
	Orders(ctx context.Context, actor model.Actor, status *model.OrderStatus) ([]model.Order, error)
	OrderTracking(ctx context.Context, actor model.Actor, orderID int64) ([]model.OrderTracking, error)
}

// NotificationFacade encapsulates notification inbox operations.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	SetNotificationRead(ctx context.Context, userID, id int64, read bool) (*model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
	DeleteNotification(ctx context.Context, userID, id int64) error
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	ProductFacade
	RFQFacade
	QuoteFacade
	ContractFacade
	OrderFacade
	NotificationFacade
}
