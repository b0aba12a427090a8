package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/domain/model"
	pkgAuth "github.com/minhvn/sourcehub/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	// ActorContextKey is a gin context key for the resolved actor.
	ActorContextKey = "actor"
	authCookieName  = "sourcehub_token"
)

// TokenVerifier turns a raw token into the acting party.
type TokenVerifier interface {
	VerifyToken(token string) (model.Actor, error)
}

// AuthRequired ensures the caller is authenticated and binds the actor to
// the request context. The actor comes from the token claims, so no storage
// round trip runs per request.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		actor, err := verifier.VerifyToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, actor.UserID)
		c.Set(ActorContextKey, actor)
		c.Next()
	}
}

// RequireRole rejects requests whose actor carries a different role. It must
// run after AuthRequired.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ActorContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		actor, ok := val.(model.Actor)
		if !ok || actor.Role != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
