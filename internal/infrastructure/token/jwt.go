// Package token issues and verifies HS256 bearer tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobledger/records-api/internal/core/domain"
	"github.com/jobledger/records-api/internal/core/ports"
)

// MinSecretLength is the shortest accepted HMAC signing secret, in bytes.
const MinSecretLength = 32

var (
	ErrSecretTooShort = fmt.Errorf("token: signing secret must be at least %d bytes", MinSecretLength)
	ErrEmptySubject   = errors.New("token: empty subject")
	ErrNegativeTTL    = errors.New("token: ttl must not be negative")
)

// JWTService implements ports.TokenService.
type JWTService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Option configures a JWTService.
type Option func(*JWTService)

// WithIssuer sets the iss claim written on issue and required on verify.
func WithIssuer(iss string) Option {
	return func(s *JWTService) { s.issuer = iss }
}

// WithClock replaces time.Now. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewJWTService creates a token service signing with secret.
func NewJWTService(secret []byte, opts ...Option) (*JWTService, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	s := &JWTService{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token for subject that expires ttl after now. A zero ttl
// yields a token that is already expired.
func (s *JWTService) Issue(subject string, ttl time.Duration) (ports.Token, error) {
	if subject == "" {
		return ports.Token{}, ErrEmptySubject
	}
	if ttl < 0 {
		return ports.Token{}, ErrNegativeTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.Token{}, fmt.Errorf("token: sign: %w", err)
	}

	return ports.Token{
		Value:     signed,
		ID:        claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify checks the signature before looking at any claim, then checks
// expiry, then returns the subject.
func (s *JWTService) Verify(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Non-strict base64 ignores the spare bits of a segment's final
		// character, so two encodings would map to one signature.
		jwt.WithStrictDecoding(),
		// Expiry is checked below against s.now with a strict bound.
		jwt.WithoutClaimsValidation(),
	)

	var claims jwt.RegisteredClaims
	tkn, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", fmt.Errorf("%w: missing required claim", domain.ErrTokenInvalid)
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return "", fmt.Errorf("%w: issuer mismatch", domain.ErrTokenInvalid)
	}

	if !s.now().Before(claims.ExpiresAt.Time) {
		return "", domain.ErrTokenExpired
	}
	return claims.Subject, nil
}
