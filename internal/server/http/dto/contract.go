package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// ContractResponse describes a supply contract.
type ContractResponse struct {
	ID          int64           `json:"id"`
	SupplierID  int64           `json:"supplier_id"`
	ShopID      int64           `json:"shop_id"`
	ProductID   int64           `json:"product_id"`
	AgreedPrice decimal.Decimal `json:"agreed_price"`
	Quantity    int             `json:"quantity"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToContractResponse maps the domain contract to its transport form.
func ToContractResponse(c model.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		SupplierID:  c.SupplierID,
		ShopID:      c.ShopID,
		ProductID:   c.ProductID,
		AgreedPrice: c.AgreedPrice,
		Quantity:    c.Quantity,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

// ToContractResponses maps a contract slice.
func ToContractResponses(contracts []model.Contract) []ContractResponse {
	resp := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, ToContractResponse(c))
	}
	return resp
}
