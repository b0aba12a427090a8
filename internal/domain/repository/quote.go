package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// RejectedSibling identifies one losing quote touched by an acceptance,
// together with the user behind its supplier for notification fan-out.
type RejectedSibling struct {
	QuoteID        int64
	SupplierID     int64
	SupplierUserID int64
}

// AcceptResult is everything an acceptance produced in one transaction: the
// winning quote, the materialized contract, and every sibling forced to
// rejected. User ids are resolved inside the same transaction so fan-out
// never references uncommitted state.
type AcceptResult struct {
	Quote          model.Quote
	Contract       model.Contract
	SupplierUserID int64
	ShopUserID     int64
	Rejected       []RejectedSibling
}

// QuoteRepository describes persistence operations for quotes.
//
// Create inserts the quote and moves a Pending parent RFQ to Quoted in the
// same transaction. Accept applies the full arbitration outcome atomically:
// winner → accepted, parent RFQ → closed, pending siblings → rejected, and
// the contract row inserted. Both Accept and Reject are guarded by the
// quote's Pending status and report ErrInvalidStateTransition when another
// caller got there first.
type QuoteRepository interface {
	Create(ctx context.Context, quote *model.Quote) (*model.Quote, error)
	GetByID(ctx context.Context, id int64) (*model.Quote, error)
	ListByRFQ(ctx context.Context, rfqID int64) ([]model.Quote, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]model.Quote, error)
	ListByShop(ctx context.Context, shopID int64) ([]model.Quote, error)
	Accept(ctx context.Context, quote *model.Quote, contract *model.Contract) (*AcceptResult, error)
	Reject(ctx context.Context, id int64) (*model.Quote, error)
}
