package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/server/http/dto"
	"github.com/minhvn/sourcehub/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.Name, model.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(*user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(*user)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := CurrentActor(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id":    actor.UserID,
		"role":       string(actor.Role),
		"profile_id": actor.ProfileID,
	})
}
