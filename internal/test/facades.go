package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, model.Role) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	VerifyFn       func(string) (model.Actor, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, name, role)
	}
	return &model.User{ID: 1, Email: email, Name: name, Role: role, ProfileID: 1}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleShop, ProfileID: 1}, "token", nil
}

// VerifyToken returns the actor baked into the token claims.
func (s AuthFacadeStub) VerifyToken(token string) (model.Actor, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	return model.Actor{UserID: 1, Role: model.RoleShop, ProfileID: 1}, nil
}

// ProductFacadeStub provides controllable behaviour for catalog endpoints.
type ProductFacadeStub struct {
	CreateFn   func(context.Context, model.Actor, string, string, string, decimal.Decimal) (*model.Product, error)
	GetFn      func(context.Context, int64) (*model.Product, error)
	ListFn     func(context.Context) ([]model.Product, error)
	ListMineFn func(context.Context, model.Actor) ([]model.Product, error)
}

// CreateProduct delegates to the override or returns a default product.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, actor model.Actor, name, description, category string, price decimal.Decimal) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, name, description, category, price)
	}
	return &model.Product{ID: 1, SupplierID: actor.ProfileID, Name: name, Price: price}, nil
}

// Product returns a stored product.
func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

// Products lists the catalog.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Product{{ID: 1}}, nil
}

// SupplierProducts lists the actor's own products.
func (s ProductFacadeStub) SupplierProducts(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	if s.ListMineFn != nil {
		return s.ListMineFn(ctx, actor)
	}
	return []model.Product{{ID: 1, SupplierID: actor.ProfileID}}, nil
}

// RFQFacadeStub provides controllable behaviour for RFQ endpoints.
type RFQFacadeStub struct {
	CreateFn func(context.Context, model.Actor, int64, int, string) (*model.RFQ, error)
	GetFn    func(context.Context, model.Actor, int64) (*model.RFQ, error)
	ListFn   func(context.Context, model.Actor) ([]model.RFQ, error)
	QuotesFn func(context.Context, model.Actor, int64) ([]model.Quote, error)
	CloseFn  func(context.Context, model.Actor, int64) (*model.RFQ, error)
}

// CreateRFQ delegates to the override or returns a default RFQ.
func (s RFQFacadeStub) CreateRFQ(ctx context.Context, actor model.Actor, productID int64, quantity int, message string) (*model.RFQ, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, productID, quantity, message)
	}
	return &model.RFQ{ID: 1, ShopID: actor.ProfileID, ProductID: productID, Quantity: quantity, Status: model.RFQStatusPending}, nil
}

// RFQ returns a single sourcing request.
func (s RFQFacadeStub) RFQ(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.RFQ{ID: id, ShopID: actor.ProfileID}, nil
}

// RFQs lists the actor's sourcing requests.
func (s RFQFacadeStub) RFQs(ctx context.Context, actor model.Actor) ([]model.RFQ, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return []model.RFQ{{ID: 1}}, nil
}

// RFQQuotes lists quotes for one sourcing request.
func (s RFQFacadeStub) RFQQuotes(ctx context.Context, actor model.Actor, rfqID int64) ([]model.Quote, error) {
	if s.QuotesFn != nil {
		return s.QuotesFn(ctx, actor, rfqID)
	}
	return []model.Quote{{ID: 1, RFQID: rfqID}}, nil
}

// CloseRFQ closes the sourcing request.
func (s RFQFacadeStub) CloseRFQ(ctx context.Context, actor model.Actor, id int64) (*model.RFQ, error) {
	if s.CloseFn != nil {
		return s.CloseFn(ctx, actor, id)
	}
	return &model.RFQ{ID: id, Status: model.RFQStatusClosed}, nil
}

// QuoteFacadeStub provides controllable behaviour for quote endpoints.
type QuoteFacadeStub struct {
	SubmitFn func(context.Context, model.Actor, int64, decimal.Decimal, int, int, string) (*model.Quote, error)
	AcceptFn func(context.Context, model.Actor, int64) (*model.Contract, error)
	RejectFn func(context.Context, model.Actor, int64) (*model.Quote, error)
	ListFn   func(context.Context, model.Actor) ([]model.Quote, error)
}

// SubmitQuote delegates to the override or returns a default quote.
func (s QuoteFacadeStub) SubmitQuote(ctx context.Context, actor model.Actor, rfqID int64, price decimal.Decimal, minOrderQty, leadTimeDays int, message string) (*model.Quote, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, actor, rfqID, price, minOrderQty, leadTimeDays, message)
	}
	return &model.Quote{ID: 1, RFQID: rfqID, SupplierID: actor.ProfileID, Price: price, Status: model.QuoteStatusPending}, nil
}

// AcceptQuote returns the materialized contract.
func (s QuoteFacadeStub) AcceptQuote(ctx context.Context, actor model.Actor, quoteID int64) (*model.Contract, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, actor, quoteID)
	}
	return &model.Contract{ID: 1, Status: model.ContractStatusActive}, nil
}

// RejectQuote rejects the quote.
func (s QuoteFacadeStub) RejectQuote(ctx context.Context, actor model.Actor, quoteID int64) (*model.Quote, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, actor, quoteID)
	}
	return &model.Quote{ID: quoteID, Status: model.QuoteStatusRejected}, nil
}

// Quotes lists quotes visible to the actor.
func (s QuoteFacadeStub) Quotes(ctx context.Context, actor model.Actor) ([]model.Quote, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return []model.Quote{{ID: 1}}, nil
}

// ContractFacadeStub provides controllable behaviour for contract endpoints.
type ContractFacadeStub struct {
	GetFn  func(context.Context, model.Actor, int64) (*model.Contract, error)
	ListFn func(context.Context, model.Actor) ([]model.Contract, error)
}

// Contract returns a single contract.
func (s ContractFacadeStub) Contract(ctx context.Context, actor model.Actor, id int64) (*model.Contract, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.Contract{ID: id, Status: model.ContractStatusActive}, nil
}

// Contracts lists the actor's contracts.
func (s ContractFacadeStub) Contracts(ctx context.Context, actor model.Actor) ([]model.Contract, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return []model.Contract{{ID: 1}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn   func(context.Context, model.Actor, int64, int, string, string, model.PaymentMethod) (*model.Order, error)
	AdvanceFn  func(context.Context, model.Actor, int64, model.OrderStatus, string) (*model.Order, error)
	ProofFn    func(context.Context, model.Actor, int64, string) (*model.Order, error)
	GetFn      func(context.Context, model.Actor, int64) (*model.Order, error)
	ListFn     func(context.Context, model.Actor, *model.OrderStatus) ([]model.Order, error)
	TrackingFn func(context.Context, model.Actor, int64) ([]model.OrderTracking, error)
}

// CreateOrder delegates to the override or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, actor model.Actor, contractID int64, quantity int, shippingAddress, note string, method model.PaymentMethod) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, contractID, quantity, shippingAddress, note, method)
	}
	return &model.Order{ID: 1, ContractID: contractID, Quantity: quantity, Status: model.OrderStatusPending}, nil
}

// AdvanceOrder applies a status transition.
func (s OrderFacadeStub) AdvanceOrder(ctx context.Context, actor model.Actor, orderID int64, status model.OrderStatus, note string) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, actor, orderID, status, note)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// AttachPaymentProof records the uploaded proof reference.
func (s OrderFacadeStub) AttachPaymentProof(ctx context.Context, actor model.Actor, orderID int64, proof string) (*model.Order, error) {
	if s.ProofFn != nil {
		return s.ProofFn(ctx, actor, orderID, proof)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPaid, PaymentProof: proof}, nil
}

// Order returns a single order.
func (s OrderFacadeStub) Order(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.Order{ID: id}, nil
}

// Orders lists the actor's orders with an optional status filter.
func (s OrderFacadeStub) Orders(ctx context.Context, actor model.Actor, status *model.OrderStatus) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor, status)
	}
	return []model.Order{{ID: 1}}, nil
}

// OrderTracking returns the order audit trail.
func (s OrderFacadeStub) OrderTracking(ctx context.Context, actor model.Actor, orderID int64) ([]model.OrderTracking, error) {
	if s.TrackingFn != nil {
		return s.TrackingFn(ctx, actor, orderID)
	}
	return []model.OrderTracking{{OrderID: orderID, Status: model.OrderStatusPending}}, nil
}

// NotificationFacadeStub provides controllable behaviour for notification endpoints.
type NotificationFacadeStub struct {
	ListFn        func(context.Context, int64, bool, int) ([]model.Notification, error)
	UnreadCountFn func(context.Context, int64) (int64, error)
	SetReadFn     func(context.Context, int64, int64, bool) (*model.Notification, error)
	MarkAllFn     func(context.Context, int64) error
	DeleteFn      func(context.Context, int64, int64) error
}

// Notifications lists the user's notifications.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, unreadOnly, limit)
	}
	return []model.Notification{{ID: 1, UserID: userID}}, nil
}

// UnreadCount returns the unread counter.
func (s NotificationFacadeStub) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	if s.UnreadCountFn != nil {
		return s.UnreadCountFn(ctx, userID)
	}
	return 0, nil
}

// SetNotificationRead flips the read flag.
func (s NotificationFacadeStub) SetNotificationRead(ctx context.Context, userID, id int64, read bool) (*model.Notification, error) {
	if s.SetReadFn != nil {
		return s.SetReadFn(ctx, userID, id, read)
	}
	return &model.Notification{ID: id, UserID: userID, IsRead: read}, nil
}

// MarkAllNotificationsRead marks everything read.
func (s NotificationFacadeStub) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	if s.MarkAllFn != nil {
		return s.MarkAllFn(ctx, userID)
	}
	return nil
}

// DeleteNotification removes an owned notification.
func (s NotificationFacadeStub) DeleteNotification(ctx context.Context, userID, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	ProductFacadeStub
	RFQFacadeStub
	QuoteFacadeStub
	ContractFacadeStub
	OrderFacadeStub
	NotificationFacadeStub
}
