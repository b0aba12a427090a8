package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus describes a quote's lifecycle. Accepted and Rejected are
// terminal; at most one quote per RFQ ever becomes Accepted.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Terminal reports whether the quote can no longer change state.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected
}

// Quote is a supplier's priced response to one RFQ.
type Quote struct {
	ID           int64
	RFQID        int64
	SupplierID   int64
	Price        decimal.Decimal
	MinOrderQty  int
	LeadTimeDays int
	Message      string
	Status       QuoteStatus
	CreatedAt    time.Time
}
