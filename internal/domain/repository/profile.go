package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// ProfileRepository resolves supplier and shop profiles. Fan-out uses it to
// map a profile reference back to the user who should receive a notification.
type ProfileRepository interface {
	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	GetShop(ctx context.Context, id int64) (*model.Shop, error)
}
