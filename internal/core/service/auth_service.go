package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobledger/records-api/internal/core/domain"
	"github.com/jobledger/records-api/internal/core/ports"
)

const (
	defaultTokenTTL = 30 * time.Minute
	dummyPassword   = "timing-equalisation-placeholder"
)

// AuthService implements registration, login and token authentication.
// Every failure reaching a caller is one of the gateway errors in domain;
// the specific reason is only logged and audited.
type AuthService struct {
	store    ports.CredentialStore
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	tokenTTL time.Duration
	throttle ports.LoginThrottle
	auditor  ports.AuthAuditor
	log      zerolog.Logger

	// dummyDigest is verified against when the identifier is unknown so that
	// both failure paths cost one hash verification.
	dummyDigest string
}

// AuthOption configures optional collaborators of AuthService.
type AuthOption func(*AuthService)

// WithLoginThrottle enables per-identifier lockout after repeated failures.
func WithLoginThrottle(t ports.LoginThrottle) AuthOption {
	return func(s *AuthService) { s.throttle = t }
}

// WithAuditor sends every gateway outcome to a.
func WithAuditor(a ports.AuthAuditor) AuthOption {
	return func(s *AuthService) { s.auditor = a }
}

func NewAuthService(
	store ports.CredentialStore,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	tokenTTL time.Duration,
	log zerolog.Logger,
	opts ...AuthOption,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	s := &AuthService{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}

	digest, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Warn().Err(err).Msg("could not precompute dummy digest")
	}
	s.dummyDigest = digest
	return s
}

// Register creates a new identity. An identifier that is already taken, even
// by a concurrent registration, yields domain.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, identifier, password string) (*domain.Identity, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	_, err := s.store.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		s.audit(ctx, identifier, domain.EventRegister, domain.OutcomeAlreadyExists, "")
		return nil, domain.ErrAlreadyExists
	case !errors.Is(err, domain.ErrIdentityNotFound):
		s.audit(ctx, identifier, domain.EventRegister, domain.OutcomeError, "")
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.audit(ctx, identifier, domain.EventRegister, domain.OutcomeError, "")
		return nil, err
	}

	created, err := s.store.Create(ctx, &domain.Identity{
		Identifier:   identifier,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.audit(ctx, identifier, domain.EventRegister, domain.OutcomeAlreadyExists, "")
			return nil, domain.ErrAlreadyExists
		}
		s.audit(ctx, identifier, domain.EventRegister, domain.OutcomeError, "")
		return nil, err
	}

	s.audit(ctx, identifier, domain.EventRegister, domain.OutcomeSuccess, "")
	s.log.Info().Str("identifier", identifier).Msg("identity registered")
	return created, nil
}

// Login checks the password and issues a token. Unknown identifiers and wrong
// passwords both return domain.ErrAuthenticationFailed.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (ports.Token, error) {
	if s.locked(ctx, identifier) {
		s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeThrottled, "")
		return ports.Token{}, domain.ErrTooManyAttempts
	}

	identity, err := s.store.FindByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) {
			s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeError, "")
			return ports.Token{}, err
		}
		_, _ = s.hasher.Verify(password, s.dummyDigest)
		s.recordFailure(ctx, identifier)
		s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeUnknownIdentifier, "")
		return ports.Token{}, domain.ErrAuthenticationFailed
	}

	ok, err := s.hasher.Verify(password, identity.PasswordHash)
	if err != nil {
		s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeError, "")
		return ports.Token{}, err
	}
	if !ok {
		s.recordFailure(ctx, identifier)
		s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeWrongPassword, "")
		return ports.Token{}, domain.ErrAuthenticationFailed
	}

	token, err := s.tokens.Issue(identity.Identifier, s.tokenTTL)
	if err != nil {
		s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeError, "")
		return ports.Token{}, fmt.Errorf("issue token: %w", err)
	}

	s.resetFailures(ctx, identifier)
	s.audit(ctx, identifier, domain.EventLogin, domain.OutcomeSuccess, token.ID)
	return token, nil
}

// Authenticate resolves a bearer token to its identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		outcome := domain.OutcomeTokenInvalid
		if errors.Is(err, domain.ErrTokenExpired) {
			outcome = domain.OutcomeTokenExpired
		}
		s.log.Debug().Err(err).Str("outcome", string(outcome)).Msg("token rejected")
		s.audit(ctx, "", domain.EventAuthenticate, outcome, "")
		return nil, domain.ErrAuthenticationFailed
	}

	identity, err := s.store.FindByIdentifier(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			s.log.Debug().Str("identifier", subject).Msg("token subject no longer exists")
			s.audit(ctx, subject, domain.EventAuthenticate, domain.OutcomeSubjectMissing, "")
			return nil, domain.ErrAuthenticationFailed
		}
		s.audit(ctx, subject, domain.EventAuthenticate, domain.OutcomeError, "")
		return nil, err
	}

	s.audit(ctx, subject, domain.EventAuthenticate, domain.OutcomeSuccess, "")
	return identity, nil
}

// The throttle fails open: a Redis outage must not lock everybody out.
func (s *AuthService) locked(ctx context.Context, identifier string) bool {
	if s.throttle == nil {
		return false
	}
	locked, err := s.throttle.Locked(ctx, identifier)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		return false
	}
	return locked
}

func (s *AuthService) recordFailure(ctx context.Context, identifier string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, identifier); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) resetFailures(ctx context.Context, identifier string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, identifier); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login failures")
	}
}

func (s *AuthService) audit(ctx context.Context, identifier string, kind domain.AuthEventKind, outcome domain.AuthOutcome, tokenID string) {
	if s.auditor == nil {
		return
	}
	s.auditor.Enqueue(domain.AuthEvent{
		Identifier: identifier,
		Kind:       kind,
		Outcome:    outcome,
		RemoteIP:   RemoteIPFromContext(ctx),
		TokenID:    tokenID,
		OccurredAt: time.Now().UTC(),
	})
}
