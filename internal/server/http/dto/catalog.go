package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// ProductRequest describes the product creation payload.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID          int64           `json:"id"`
	SupplierID  int64           `json:"supplier_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToProductResponse maps the domain product to its transport form.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductResponses maps a product slice.
func ToProductResponses(products []model.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ToProductResponse(p))
	}
	return resp
}
