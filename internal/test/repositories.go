package test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// UserRepositoryStub stores accounts in-memory for tests. Profiles get
// sequential ids mirroring the storage layer's behaviour.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers a user with its profile unless the email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash, name string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           s.Next,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		ProfileID:    s.Next,
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches a user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProfileRepositoryStub resolves profiles from preloaded maps.
type ProfileRepositoryStub struct {
	Suppliers map[int64]*model.Supplier
	Shops     map[int64]*model.Shop
}

// NewProfileRepositoryStub constructs the stub with initialized maps.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{
		Suppliers: make(map[int64]*model.Supplier),
		Shops:     make(map[int64]*model.Shop),
	}
}

// AddSupplier registers a supplier profile backed by the given user.
func (s *ProfileRepositoryStub) AddSupplier(id, userID int64) *model.Supplier {
	sup := &model.Supplier{ID: id, UserID: userID, CompanyName: fmt.Sprintf("supplier-%d", id)}
	s.Suppliers[id] = sup
	return sup
}

// AddShop registers a shop profile backed by the given user.
func (s *ProfileRepositoryStub) AddShop(id, userID int64) *model.Shop {
	shop := &model.Shop{ID: id, UserID: userID, ShopName: fmt.Sprintf("shop-%d", id)}
	s.Shops[id] = shop
	return shop
}

// GetSupplier returns the supplier profile or not found.
func (s *ProfileRepositoryStub) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	if sup, ok := s.Suppliers[id]; ok {
		return sup, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetShop returns the shop profile or not found.
func (s *ProfileRepositoryStub) GetShop(ctx context.Context, id int64) (*model.Shop, error) {
	if shop, ok := s.Shops[id]; ok {
		return shop, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores catalog entries in-memory.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs the stub with initialized state.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Create stores the product with a fresh id.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p := *product
	p.ID = s.Next
	p.CreatedAt = time.Now()
	s.Next++
	s.Products[p.ID] = &p
	return &p, nil
}

// GetByID returns the product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	var result []model.Product
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

// ListBySupplier filters products by owning supplier.
func (s *ProductRepositoryStub) ListBySupplier(ctx context.Context, supplierID int64) ([]model.Product, error) {
	var result []model.Product
	for _, p := range s.Products {
		if p.SupplierID == supplierID {
			result = append(result, *p)
		}
	}
	return result, nil
}

// RFQRepositoryStub stores sourcing requests in-memory.
type RFQRepositoryStub struct {
	RFQs map[int64]*model.RFQ
	Next int64
	Err  error
}

// NewRFQRepositoryStub constructs the stub with initialized state.
func NewRFQRepositoryStub() *RFQRepositoryStub {
	return &RFQRepositoryStub{RFQs: make(map[int64]*model.RFQ), Next: 1}
}

// Add preloads an RFQ for tests.
func (s *RFQRepositoryStub) Add(rfq *model.RFQ) *model.RFQ {
	cp := *rfq
	if cp.ID == 0 {
		cp.ID = s.Next
		s.Next++
	} else if cp.ID >= s.Next {
		s.Next = cp.ID + 1
	}
	s.RFQs[cp.ID] = &cp
	return &cp
}

// Create stores the RFQ with a fresh id.
func (s *RFQRepositoryStub) Create(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	r := *rfq
	r.ID = s.Next
	r.CreatedAt = time.Now()
	s.Next++
	s.RFQs[r.ID] = &r
	return &r, nil
}

// GetByID returns a copy of the RFQ or not found.
func (s *RFQRepositoryStub) GetByID(ctx context.Context, id int64) (*model.RFQ, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if r, ok := s.RFQs[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByShop filters RFQs by owning shop.
func (s *RFQRepositoryStub) ListByShop(ctx context.Context, shopID int64) ([]model.RFQ, error) {
	var result []model.RFQ
	for _, r := range s.RFQs {
		if r.ShopID == shopID {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ListForSupplier returns everything; the stub has no product index, tests
// preload only relevant RFQs.
func (s *RFQRepositoryStub) ListForSupplier(ctx context.Context, supplierID int64) ([]model.RFQ, error) {
	var result []model.RFQ
	for _, r := range s.RFQs {
		result = append(result, *r)
	}
	return result, nil
}

// Close moves the RFQ to closed unless it already is.
func (s *RFQRepositoryStub) Close(ctx context.Context, id int64) (*model.RFQ, error) {
	r, ok := s.RFQs[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if r.Status == model.RFQStatusClosed {
		return nil, domainErrors.ErrInvalidStateTransition
	}
	r.Status = model.RFQStatusClosed
	cp := *r
	return &cp, nil
}

// QuoteRepositoryStub mimics the storage layer's arbitration semantics
// in-memory: guarded status updates, sibling rejection, RFQ closure, and
// contract creation in one logical step.
type QuoteRepositoryStub struct {
	Quotes    map[int64]*model.Quote
	RFQs      *RFQRepositoryStub
	Profiles  *ProfileRepositoryStub
	Contracts *ContractRepositoryStub
	Next      int64
	Err       error
	AcceptErr error
}

// NewQuoteRepositoryStub wires the stub against shared RFQ, profile, and
// contract stubs so cross-entity effects stay observable.
func NewQuoteRepositoryStub(rfqs *RFQRepositoryStub, profiles *ProfileRepositoryStub, contracts *ContractRepositoryStub) *QuoteRepositoryStub {
	return &QuoteRepositoryStub{
		Quotes:    make(map[int64]*model.Quote),
		RFQs:      rfqs,
		Profiles:  profiles,
		Contracts: contracts,
		Next:      1,
	}
}

// Add preloads a quote for tests.
func (s *QuoteRepositoryStub) Add(quote *model.Quote) *model.Quote {
	cp := *quote
	if cp.ID == 0 {
		cp.ID = s.Next
		s.Next++
	} else if cp.ID >= s.Next {
		s.Next = cp.ID + 1
	}
	s.Quotes[cp.ID] = &cp
	return &cp
}

// Create stores the quote and bumps a pending parent RFQ to quoted.
func (s *QuoteRepositoryStub) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	q := *quote
	q.ID = s.Next
	q.CreatedAt = time.Now()
	s.Next++
	s.Quotes[q.ID] = &q
	if rfq, ok := s.RFQs.RFQs[q.RFQID]; ok && rfq.Status == model.RFQStatusPending {
		rfq.Status = model.RFQStatusQuoted
	}
	cp := q
	return &cp, nil
}

// GetByID returns a copy of the quote or not found.
func (s *QuoteRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if q, ok := s.Quotes[id]; ok {
		cp := *q
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRFQ filters quotes by parent RFQ.
func (s *QuoteRepositoryStub) ListByRFQ(ctx context.Context, rfqID int64) ([]model.Quote, error) {
	var result []model.Quote
	for _, q := range s.Quotes {
		if q.RFQID == rfqID {
			result = append(result, *q)
		}
	}
	return result, nil
}

// ListBySupplier filters quotes by responding supplier.
func (s *QuoteRepositoryStub) ListBySupplier(ctx context.Context, supplierID int64) ([]model.Quote, error) {
	var result []model.Quote
	for _, q := range s.Quotes {
		if q.SupplierID == supplierID {
			result = append(result, *q)
		}
	}
	return result, nil
}

// ListByShop returns quotes attached to the shop's RFQs.
func (s *QuoteRepositoryStub) ListByShop(ctx context.Context, shopID int64) ([]model.Quote, error) {
	var result []model.Quote
	for _, q := range s.Quotes {
		if rfq, ok := s.RFQs.RFQs[q.RFQID]; ok && rfq.ShopID == shopID {
			result = append(result, *q)
		}
	}
	return result, nil
}

// Accept applies the full arbitration outcome the way the storage layer
// does: guarded winner update, RFQ closure, sibling rejection, contract row.
func (s *QuoteRepositoryStub) Accept(ctx context.Context, quote *model.Quote, contract *model.Contract) (*repository.AcceptResult, error) {
	if s.AcceptErr != nil {
		return nil, s.AcceptErr
	}
	stored, ok := s.Quotes[quote.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if stored.Status != model.QuoteStatusPending {
		return nil, domainErrors.ErrInvalidStateTransition
	}
	stored.Status = model.QuoteStatusAccepted

	rfq, ok := s.RFQs.RFQs[stored.RFQID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	rfq.Status = model.RFQStatusClosed

	result := &repository.AcceptResult{Quote: *stored}
	for _, sibling := range s.Quotes {
		if sibling.RFQID == stored.RFQID && sibling.ID != stored.ID && sibling.Status == model.QuoteStatusPending {
			sibling.Status = model.QuoteStatusRejected
			rejected := repository.RejectedSibling{QuoteID: sibling.ID, SupplierID: sibling.SupplierID}
			if sup, ok := s.Profiles.Suppliers[sibling.SupplierID]; ok {
				rejected.SupplierUserID = sup.UserID
			}
			result.Rejected = append(result.Rejected, rejected)
		}
	}

	created := *contract
	created.ID = s.Contracts.Next
	created.CreatedAt = time.Now()
	s.Contracts.Next++
	s.Contracts.Contracts[created.ID] = &created
	result.Contract = created

	if sup, ok := s.Profiles.Suppliers[stored.SupplierID]; ok {
		result.SupplierUserID = sup.UserID
	}
	if shop, ok := s.Profiles.Shops[rfq.ShopID]; ok {
		result.ShopUserID = shop.UserID
	}
	return result, nil
}

// Reject moves a pending quote to rejected.
func (s *QuoteRepositoryStub) Reject(ctx context.Context, id int64) (*model.Quote, error) {
	q, ok := s.Quotes[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if q.Status != model.QuoteStatusPending {
		return nil, domainErrors.ErrInvalidStateTransition
	}
	q.Status = model.QuoteStatusRejected
	cp := *q
	return &cp, nil
}

// ContractRepositoryStub stores contracts in-memory.
type ContractRepositoryStub struct {
	Contracts map[int64]*model.Contract
	Next      int64
	Err       error
}

// NewContractRepositoryStub constructs the stub with initialized state.
func NewContractRepositoryStub() *ContractRepositoryStub {
	return &ContractRepositoryStub{Contracts: make(map[int64]*model.Contract), Next: 1}
}

// Add preloads a contract for tests.
func (s *ContractRepositoryStub) Add(contract *model.Contract) *model.Contract {
	cp := *contract
	if cp.ID == 0 {
		cp.ID = s.Next
		s.Next++
	} else if cp.ID >= s.Next {
		s.Next = cp.ID + 1
	}
	s.Contracts[cp.ID] = &cp
	return &cp
}

// GetByID returns a copy of the contract or not found.
func (s *ContractRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Contract, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Contracts[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListBySupplier filters contracts by supplier.
func (s *ContractRepositoryStub) ListBySupplier(ctx context.Context, supplierID int64) ([]model.Contract, error) {
	var result []model.Contract
	for _, c := range s.Contracts {
		if c.SupplierID == supplierID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// ListByShop filters contracts by shop.
func (s *ContractRepositoryStub) ListByShop(ctx context.Context, shopID int64) ([]model.Contract, error) {
	var result []model.Contract
	for _, c := range s.Contracts {
		if c.ShopID == shopID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// OrderRepositoryStub mimics the storage layer's guarded order updates and
// tracking trail in-memory.
type OrderRepositoryStub struct {
	Orders   map[int64]*model.Order
	Trail    map[int64][]model.OrderTracking
	Next     int64
	Err      error
	CreateFn func(context.Context, *model.Order, string, int64) (*model.Order, error)
}

// NewOrderRepositoryStub constructs the stub with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		Trail:  make(map[int64][]model.OrderTracking),
		Next:   1,
	}
}

// Add preloads an order for tests.
func (s *OrderRepositoryStub) Add(order *model.Order) *model.Order {
	cp := *order
	if cp.ID == 0 {
		cp.ID = s.Next
		s.Next++
	} else if cp.ID >= s.Next {
		s.Next = cp.ID + 1
	}
	s.Orders[cp.ID] = &cp
	return &cp
}

// Create stores the order with its initial tracking row.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, note string, actorUserID int64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, note, actorUserID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	o := *order
	o.ID = s.Next
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	s.Next++
	s.Orders[o.ID] = &o
	s.appendTracking(o.ID, o.Status, note, actorUserID)
	cp := o
	return &cp, nil
}

// GetByID returns a copy of the order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if o, ok := s.Orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListBySupplier filters orders by supplier and optional status.
func (s *OrderRepositoryStub) ListBySupplier(ctx context.Context, supplierID int64, status *model.OrderStatus) ([]model.Order, error) {
	var result []model.Order
	for _, o := range s.Orders {
		if o.SupplierID == supplierID && (status == nil || o.Status == *status) {
			result = append(result, *o)
		}
	}
	return result, nil
}

// ListByShop filters orders by shop and optional status.
func (s *OrderRepositoryStub) ListByShop(ctx context.Context, shopID int64, status *model.OrderStatus) ([]model.Order, error) {
	var result []model.Order
	for _, o := range s.Orders {
		if o.ShopID == shopID && (status == nil || o.Status == *status) {
			result = append(result, *o)
		}
	}
	return result, nil
}

// UpdateStatus applies a guarded transition and appends a tracking row.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, note string, actorUserID int64) (*model.Order, error) {
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != from {
		return nil, domainErrors.ErrInvalidStateTransition
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	if to == model.OrderStatusPaid && o.PaidAt == nil {
		now := time.Now()
		o.PaidAt = &now
	}
	s.appendTracking(o.ID, to, note, actorUserID)
	cp := *o
	return &cp, nil
}

// AttachPaymentProof forces the order to paid, keeping an existing paid_at.
func (s *OrderRepositoryStub) AttachPaymentProof(ctx context.Context, orderID int64, proof, note string, actorUserID int64) (*model.Order, error) {
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.PaymentProof = proof
	o.Status = model.OrderStatusPaid
	if o.PaidAt == nil {
		now := time.Now()
		o.PaidAt = &now
	}
	o.UpdatedAt = time.Now()
	s.appendTracking(o.ID, model.OrderStatusPaid, note, actorUserID)
	cp := *o
	return &cp, nil
}

// Tracking returns the audit trail for the order.
func (s *OrderRepositoryStub) Tracking(ctx context.Context, orderID int64) ([]model.OrderTracking, error) {
	return s.Trail[orderID], nil
}

func (s *OrderRepositoryStub) appendTracking(orderID int64, status model.OrderStatus, note string, actorUserID int64) {
	s.Trail[orderID] = append(s.Trail[orderID], model.OrderTracking{
		ID:        int64(len(s.Trail[orderID]) + 1),
		OrderID:   orderID,
		Status:    status,
		Note:      note,
		UpdatedBy: actorUserID,
		CreatedAt: time.Now(),
	})
}

// NotificationRepositoryStub stores notifications in-memory. It is safe for
// concurrent use so dispatcher tests can hammer it from workers.
type NotificationRepositoryStub struct {
	mu            sync.Mutex
	Notifications []model.Notification
	Next          int64
	Err           error
}

// NewNotificationRepositoryStub constructs the stub.
func NewNotificationRepositoryStub() *NotificationRepositoryStub {
	return &NotificationRepositoryStub{Next: 1}
}

// Create appends the notification.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	cp := *n
	cp.ID = s.Next
	cp.CreatedAt = time.Now()
	s.Next++
	s.Notifications = append(s.Notifications, cp)
	return &cp, nil
}

// ListByUser filters stored notifications.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Notification
	for _, n := range s.Notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		result = append(result, n)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// UnreadCount counts unread notifications of the user.
func (s *NotificationRepositoryStub) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, n := range s.Notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// SetRead flips the read flag on an owned notification.
func (s *NotificationRepositoryStub) SetRead(ctx context.Context, id, userID int64, read bool) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Notifications {
		if s.Notifications[i].ID == id && s.Notifications[i].UserID == userID {
			s.Notifications[i].IsRead = read
			cp := s.Notifications[i]
			return &cp, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MarkAllRead marks every notification of the user as read.
func (s *NotificationRepositoryStub) MarkAllRead(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Notifications {
		if s.Notifications[i].UserID == userID {
			s.Notifications[i].IsRead = true
		}
	}
	return nil
}

// Delete removes an owned notification.
func (s *NotificationRepositoryStub) Delete(ctx context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Notifications {
		if s.Notifications[i].ID == id && s.Notifications[i].UserID == userID {
			s.Notifications = append(s.Notifications[:i], s.Notifications[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// NotifierRecorder captures fan-out calls synchronously for assertions.
type NotifierRecorder struct {
	mu    sync.Mutex
	Calls []NotifyCall
}

// NotifyCall is one recorded fan-out invocation.
type NotifyCall struct {
	UserID  int64
	Type    model.NotificationType
	Title   string
	Message string
	Link    string
}

// Notify records the call.
func (r *NotifierRecorder) Notify(userID int64, t model.NotificationType, title, message, link string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, NotifyCall{UserID: userID, Type: t, Title: title, Message: message, Link: link})
}

// ByType returns recorded calls of one notification type.
func (r *NotifierRecorder) ByType(t model.NotificationType) []NotifyCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []NotifyCall
	for _, c := range r.Calls {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}
