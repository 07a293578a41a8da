package identity

import (
	"time"

	"github.com/bistro/backend/internal/domain/identity"
	"github.com/bistro/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// AddGroupMemberRequest represents a request to add a user to a staff group
type AddGroupMemberRequest struct {
	Username string `json:"username" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *identity.User) UserResponse {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.String())
	}
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Status:    string(user.Status),
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
}
