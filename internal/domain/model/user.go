package model

import "time"

// Role separates the two sides of the marketplace.
type Role string

const (
	RoleSupplier Role = "supplier"
	RoleShop     Role = "shop"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleSupplier || r == RoleShop
}

// User is a registered account. Every user owns exactly one role-specific
// profile (Supplier or Shop) referenced by ProfileID.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	ProfileID    int64
	CreatedAt    time.Time
}

// Actor is the resolved identity attached to every request: the user,
// their role, and the id of the supplier/shop profile they act through.
type Actor struct {
	UserID    int64
	Role      Role
	ProfileID int64
}

// Supplier is the selling-side profile.
type Supplier struct {
	ID          int64
	UserID      int64
	CompanyName string
	Address     string
	Phone       string
	CreatedAt   time.Time
}

// Shop is the buying-side profile.
type Shop struct {
	ID        int64
	UserID    int64
	ShopName  string
	Address   string
	Phone     string
	CreatedAt time.Time
}
