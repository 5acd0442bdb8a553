package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Password   string `json:"password"   validate:"required,max_bytes=72"`
}

// tokenRequest follows the OAuth2 password grant form fields.
type tokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required,max_bytes=72"`
}

type identityResponse struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"created_at"`
}

type registerResponse struct {
	Identity identityResponse `json:"identity"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type meResponse struct {
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"created_at"`
}
