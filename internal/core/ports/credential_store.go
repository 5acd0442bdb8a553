package ports

import (
	"context"

	"github.com/jobledger/records-api/internal/core/domain"
)

// CredentialStore persists one Identity per identifier.
type CredentialStore interface {
	// FindByIdentifier returns domain.ErrIdentityNotFound when no identity exists.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Identity, error)
	// Create returns domain.ErrAlreadyExists when the identifier is taken. The
	// uniqueness check is enforced atomically by the store.
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
}
