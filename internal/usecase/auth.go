package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
	pkgAuth "github.com/minhvn/sourcehub/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle, token management, and actor
// resolution.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account with its role profile and returns an auth
// token.
func (u *AuthUseCase) Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, "", domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash, name, role)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{UserID: usr.ID, Role: usr.Role, ProfileID: usr.ProfileID})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{UserID: usr.ID, Role: usr.Role, ProfileID: usr.ProfileID})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// VerifyToken validates the token and rebuilds the actor every core
// operation trusts: user id, role, and the role-specific profile id. All
// three travel in the token claims, so verification needs no user lookup.
func (u *AuthUseCase) VerifyToken(token string) (model.Actor, error) {
	if token == "" {
		return model.Actor{}, pkgAuth.ErrInvalidToken
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Actor{}, err
	}
	return model.Actor{UserID: claims.UserID, Role: claims.Role, ProfileID: claims.ProfileID}, nil
}
