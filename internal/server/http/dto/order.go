package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// OrderRequest describes the order creation payload.
type OrderRequest struct {
	ContractID      int64  `json:"contract_id"`
	Quantity        int    `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
	Note            string `json:"note"`
	PaymentMethod   string `json:"payment_method"`
}

// OrderStatusRequest describes a status transition payload.
type OrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// OrderResponse describes an order.
type OrderResponse struct {
	ID              int64           `json:"id"`
	Code            string          `json:"code"`
	ContractID      int64           `json:"contract_id"`
	SupplierID      int64           `json:"supplier_id"`
	ShopID          int64           `json:"shop_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	Note            string          `json:"note,omitempty"`
	PaymentMethod   string          `json:"payment_method"`
	Status          string          `json:"status"`
	PaymentProof    string          `json:"payment_proof,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TrackingResponse describes one entry of the order audit trail.
type TrackingResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy int64     `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ToOrderResponse maps the domain order to its transport form.
func ToOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		Code:            o.Code,
		ContractID:      o.ContractID,
		SupplierID:      o.SupplierID,
		ShopID:          o.ShopID,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Note:            o.Note,
		PaymentMethod:   string(o.PaymentMethod),
		Status:          string(o.Status),
		PaymentProof:    o.PaymentProof,
		PaidAt:          o.PaidAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses maps an order slice.
func ToOrderResponses(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, ToOrderResponse(o))
	}
	return resp
}

// ToTrackingResponses maps the audit trail.
func ToTrackingResponses(trail []model.OrderTracking) []TrackingResponse {
	resp := make([]TrackingResponse, 0, len(trail))
	for _, tr := range trail {
		resp = append(resp, TrackingResponse{
			ID:        tr.ID,
			OrderID:   tr.OrderID,
			Status:    string(tr.Status),
			Note:      tr.Note,
			UpdatedBy: tr.UpdatedBy,
			CreatedAt: tr.CreatedAt,
		})
	}
	return resp
}
