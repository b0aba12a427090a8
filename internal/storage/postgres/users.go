package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

type profileRepository struct {
	storage *Storage
}

// userColumns joins the role-specific profile so every loaded user carries
// its profile id.
const userColumns = `SELECT u.id, u.email, u.password_hash, u.name, u.role,
              COALESCE(s.id, sh.id, 0), u.created_at
       FROM users u
       LEFT JOIN suppliers s ON s.user_id = u.id AND u.role = 'supplier'
       LEFT JOIN shops sh ON sh.user_id = u.id AND u.role = 'shop'`

func (r *userRepository) Create(ctx context.Context, email, passwordHash, name string, role model.Role) (*model.User, error) {
	u := model.User{Email: email, PasswordHash: passwordHash, Name: name, Role: role}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertUser = `INSERT INTO users (email, password_hash, name, role)
                            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertUser, email, passwordHash, name, role).Scan(&u.ID, &u.CreatedAt); err != nil {
			return err
		}

		var insertProfile string
		switch role {
		case model.RoleSupplier:
			insertProfile = `INSERT INTO suppliers (user_id, company_name) VALUES ($1, $2) RETURNING id`
		case model.RoleShop:
			insertProfile = `INSERT INTO shops (user_id, shop_name) VALUES ($1, $2) RETURNING id`
		default:
			return domainErrors.ErrValidation
		}
		return tx.QueryRow(ctx, insertProfile, u.ID, name).Scan(&u.ProfileID)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := userColumns + ` WHERE u.email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.ProfileID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := userColumns + ` WHERE u.id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.ProfileID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *profileRepository) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	const query = `SELECT id, user_id, company_name, address, phone, created_at FROM suppliers WHERE id=$1`
	var s model.Supplier
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.UserID, &s.CompanyName, &s.Address, &s.Phone, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *profileRepository) GetShop(ctx context.Context, id int64) (*model.Shop, error) {
	const query = `SELECT id, user_id, shop_name, address, phone, created_at FROM shops WHERE id=$1`
	var s model.Shop
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.UserID, &s.ShopName, &s.Address, &s.Phone, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
