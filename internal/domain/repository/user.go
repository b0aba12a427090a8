package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// UserRepository describes persistence operations for accounts. Create
// persists the user together with its role-specific profile row in one
// transaction and returns the user with ProfileID populated.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, name string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
