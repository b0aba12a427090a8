package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipping       OrderStatus = "shipping"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderSequence is the forward fulfillment path. Cancelled sits outside the
// sequence and is reachable from any non-terminal state.
var orderSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPaymentPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipping,
	OrderStatusDelivered,
	OrderStatusCompleted,
}

// Valid reports whether the status belongs to the closed set.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	for _, st := range orderSequence {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransition reports whether the status may advance to next. Legal moves
// are the immediate successor in the fulfillment sequence, or Cancelled from
// any non-terminal state. Backward and skip-ahead moves are rejected.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	for i, st := range orderSequence[:len(orderSequence)-1] {
		if st == s {
			return orderSequence[i+1] == next
		}
	}
	return false
}

// PaymentMethod describes how the shop settles an order.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodQRCode       PaymentMethod = "qr_code"
	PaymentMethodCOD          PaymentMethod = "cod"
)

// Valid reports whether the payment method belongs to the closed set.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodBankTransfer || m == PaymentMethodQRCode || m == PaymentMethodCOD
}

// Order is a fulfillment instance drawn against an active contract, possibly
// for partial quantity. UnitPrice is copied from the contract at creation and
// never changes; TotalAmount is always quantity × unit price.
type Order struct {
	ID              int64
	Code            string
	ContractID      int64
	SupplierID      int64
	ShopID          int64
	Quantity        int
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	ShippingAddress string
	Note            string
	PaymentMethod   PaymentMethod
	Status          OrderStatus
	PaymentProof    string
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderTracking is one entry of an order's audit trail: who moved the order
// to which status, when, and with what note.
type OrderTracking struct {
	ID        int64
	OrderID   int64
	Status    OrderStatus
	Note      string
	UpdatedBy int64
	CreatedAt time.Time
}
