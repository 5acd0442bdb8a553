package ports

import (
	"context"

	"github.com/jobledger/records-api/internal/core/domain"
)

// AuthService is the request-level authentication gateway.
type AuthService interface {
	Register(ctx context.Context, identifier, password string) (*domain.Identity, error)
	Login(ctx context.Context, identifier, password string) (Token, error)
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// LoginThrottle tracks failed logins per identifier.
type LoginThrottle interface {
	Locked(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}

// AuthAuditor accepts audit events without blocking the request path.
type AuthAuditor interface {
	Enqueue(event domain.AuthEvent)
}
