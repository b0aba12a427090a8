package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a supplier's catalog entry. RFQs reference a product and the
// product's owner is the supplier invited to quote.
type Product struct {
	ID          int64
	SupplierID  int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	CreatedAt   time.Time
}
