package domain

import "time"

// AuthEventKind names the gateway entry point that produced an event.
type AuthEventKind string

const (
	EventRegister     AuthEventKind = "register"
	EventLogin        AuthEventKind = "login"
	EventAuthenticate AuthEventKind = "authenticate"
)

// AuthOutcome is the internal reason recorded for an auth event. Callers only
// ever see the collapsed error; the outcome stays server-side.
type AuthOutcome string

const (
	OutcomeSuccess           AuthOutcome = "success"
	OutcomeAlreadyExists     AuthOutcome = "already_exists"
	OutcomeUnknownIdentifier AuthOutcome = "unknown_identifier"
	OutcomeWrongPassword     AuthOutcome = "wrong_password"
	OutcomeTokenInvalid      AuthOutcome = "token_invalid"
	OutcomeTokenExpired      AuthOutcome = "token_expired"
	OutcomeSubjectMissing    AuthOutcome = "subject_missing"
	OutcomeThrottled         AuthOutcome = "throttled"
	OutcomeError             AuthOutcome = "error"
)

// AuthEvent is one entry of the authentication audit trail.
type AuthEvent struct {
	Identifier string
	Kind       AuthEventKind
	Outcome    AuthOutcome
	RemoteIP   string
	TokenID    string
	OccurredAt time.Time
}
