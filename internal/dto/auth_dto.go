package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest arrives form-encoded on POST /api/v1/token (OAuth2 password flow).
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
	Role     string  `json:"role"`
}
