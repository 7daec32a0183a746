package structs

import "time"

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// IdentityTokens is what the identity provider hands back on sign-in or refresh.
type IdentityTokens struct {
	IDToken      string
	RefreshToken string // empty on refresh, the old one stays valid
}

// IdentityClaims are the fields the storefront reads from an ID token.
type IdentityClaims struct {
	Subject   string
	Username  string // cognito:username
	LoginID   string // email the user signed in with
	ExpiresAt time.Time
}

// Credential is a bearer token borrowed for exactly one outgoing request.
type Credential struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
}

// Session is the server-side record behind the session cookie.
type Session struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	LoginID      string    `json:"login_id"`
	IDToken      string    `json:"id_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	RefreshToken string    `json:"refresh_token"` // sealed with lib.Encrypt
	CreatedAt    time.Time `json:"created_at"`
}
