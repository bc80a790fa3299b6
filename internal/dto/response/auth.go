package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
	Token     string          `json:"token,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

type IdentityResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Role     entity.UserRole `json:"role"`
}

func IdentityToResponse(identity entity.Identity) IdentityResponse {
	return IdentityResponse{
		ID:       identity.ID.Hex(),
		Username: identity.Username,
		Role:     identity.Role,
	}
}
