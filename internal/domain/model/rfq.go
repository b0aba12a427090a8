package model

import "time"

// RFQStatus describes the request-for-quotation lifecycle. The status only
// ever moves forward: Pending (awaiting quotes) → Quoted (at least one quote
// received) → Closed (a quote was accepted or the shop closed the request).
type RFQStatus string

const (
	RFQStatusPending RFQStatus = "pending"
	RFQStatusQuoted  RFQStatus = "quoted"
	RFQStatusClosed  RFQStatus = "closed"
)

// CanTransition reports whether the status may move to next. Regressions and
// self-transitions are rejected.
func (s RFQStatus) CanTransition(next RFQStatus) bool {
	switch s {
	case RFQStatusPending:
		return next == RFQStatusQuoted || next == RFQStatusClosed
	case RFQStatusQuoted:
		return next == RFQStatusClosed
	default:
		return false
	}
}

// RFQ is a shop's sourcing request against a specific product and quantity.
// RFQs are a historical record and are never deleted.
type RFQ struct {
	ID        int64
	ShopID    int64
	ProductID int64
	Quantity  int
	Message   string
	Status    RFQStatus
	CreatedAt time.Time
}
