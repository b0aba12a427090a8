package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentActor extracts the resolved actor from context.
func CurrentActor(c *gin.Context) model.Actor {
	val, ok := c.Get(middleware.ActorContextKey)
	if !ok {
		return model.Actor{}
	}
	actor, _ := val.(model.Actor)
	return actor
}

// idParam parses a positive int64 path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondError maps a domain error to the HTTP status.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
