package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus describes contract validity.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
)

// DefaultContractTerm is the agreement length applied when a contract is
// materialized from an accepted quote; this flow carries no negotiated end date.
const DefaultContractTerm = 365 * 24 * time.Hour

// Contract is the binding agreement materialized from exactly one accepted
// quote. Price and quantity are copied from the originating quote and RFQ at
// creation time and never change afterwards.
type Contract struct {
	ID          int64
	SupplierID  int64
	ShopID      int64
	ProductID   int64
	AgreedPrice decimal.Decimal
	Quantity    int
	StartDate   time.Time
	EndDate     time.Time
	Status      ContractStatus
	CreatedAt   time.Time
}
