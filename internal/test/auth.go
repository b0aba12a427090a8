package test

import (
	"errors"

	"github.com/minhvn/sourcehub/internal/domain/model"
	pkgAuth "github.com/minhvn/sourcehub/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses claim tokens via function overrides.
type StrategyStub struct {
	IssueFn func(pkgAuth.Claims) (string, error)
	ParseFn func(string) (pkgAuth.Claims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(claims pkgAuth.Claims) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(claims)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: model.RoleShop, ProfileID: 1}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// VerifierStub supplies actors to the auth middleware.
type VerifierStub struct {
	Actor    *model.Actor
	Err      error
	VerifyFn func(string) (model.Actor, error)
}

// VerifyToken delegates to the override or returns the stored actor.
func (s VerifierStub) VerifyToken(token string) (model.Actor, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	if s.Err != nil {
		return model.Actor{}, s.Err
	}
	if s.Actor != nil {
		return *s.Actor, nil
	}
	return model.Actor{UserID: 1, Role: model.RoleShop, ProfileID: 1}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
