package dto

import (
	"time"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse describes the authenticated user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ProfileID int64     `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries the issued token together with the user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse maps the domain user to its transport form.
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		ProfileID: u.ProfileID,
		CreatedAt: u.CreatedAt,
	}
}
