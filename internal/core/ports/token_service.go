package ports

import "time"

// Token is a signed bearer credential handed to the client.
type Token struct {
	Value     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (Token, error)
	// Verify returns the token subject, domain.ErrTokenInvalid for malformed or
	// tampered tokens, or domain.ErrTokenExpired for well-formed lapsed ones.
	Verify(token string) (string, error)
}
