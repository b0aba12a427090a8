package auth

import (
	"time"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// Claims is the identity a token carries. The role and profile ride in the
// payload so middleware can rebuild the acting party without a user lookup
// on every request.
type Claims struct {
	UserID    int64
	Role      model.Role
	ProfileID int64
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
