package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// RFQRequest describes the sourcing request creation payload.
type RFQRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Message   string `json:"message"`
}

// RFQResponse describes a sourcing request.
type RFQResponse struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteRequest describes the quote submission payload.
type QuoteRequest struct {
	Price        decimal.Decimal `json:"price"`
	MinOrderQty  int             `json:"min_order_qty"`
	LeadTimeDays int             `json:"lead_time_days"`
	Message      string          `json:"message"`
}

// QuoteResponse describes a supplier quote.
type QuoteResponse struct {
	ID           int64           `json:"id"`
	RFQID        int64           `json:"rfq_id"`
	SupplierID   int64           `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	MinOrderQty  int             `json:"min_order_qty"`
	LeadTimeDays int             `json:"lead_time_days"`
	Message      string          `json:"message"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToRFQResponse maps the domain RFQ to its transport form.
func ToRFQResponse(r model.RFQ) RFQResponse {
	return RFQResponse{
		ID:        r.ID,
		ShopID:    r.ShopID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ToRFQResponses maps an RFQ slice.
func ToRFQResponses(rfqs []model.RFQ) []RFQResponse {
	resp := make([]RFQResponse, 0, len(rfqs))
	for _, r := range rfqs {
		resp = append(resp, ToRFQResponse(r))
	}
	return resp
}

// ToQuoteResponse maps the domain quote to its transport form.
func ToQuoteResponse(q model.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		RFQID:        q.RFQID,
		SupplierID:   q.SupplierID,
		Price:        q.Price,
		MinOrderQty:  q.MinOrderQty,
		LeadTimeDays: q.LeadTimeDays,
		Message:      q.Message,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt,
	}
}

// ToQuoteResponses maps a quote slice.
func ToQuoteResponses(quotes []model.Quote) []QuoteResponse {
	resp := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, ToQuoteResponse(q))
	}
	return resp
}
