package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobledger/records-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		code      int
		body      string
		challenge bool
	}{
		{"conflict", domain.ErrAlreadyExists, http.StatusConflict, "identifier already registered", false},
		{"auth failed", domain.ErrAuthenticationFailed, http.StatusUnauthorized, "invalid credentials", true},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many failed login attempts", false},
		{"invalid job", fmt.Errorf("%w: job_ref is required", domain.ErrInvalidJob), http.StatusUnprocessableEntity, "job_ref is required", false},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload", false},
		{"store down", fmt.Errorf("%w: find identity: timeout", domain.ErrStoreUnavailable), http.StatusServiceUnavailable, "service unavailable", false},
		{"hasher fault", domain.ErrHasherFault, http.StatusInternalServerError, "internal server error", false},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.New(&logBuf))(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.body) {
				t.Fatalf("expected body to contain %q, got %s", tc.body, rec.Body.String())
			}
			if got := rec.Header().Get(echo.HeaderWWWAuthenticate) == "Bearer"; got != tc.challenge {
				t.Fatalf("WWW-Authenticate present=%v, want %v", got, tc.challenge)
			}
		})
	}
}

func TestHTTPErrorHandler_DoesNotLeakCause(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/token", nil), rec)

	NewHTTPErrorHandler(zerolog.New(&logBuf))(errors.New("mongo: connection reset by 10.0.0.5"), c)

	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("response leaks internal cause: %s", rec.Body.String())
	}
	if !strings.Contains(logBuf.String(), "10.0.0.5") {
		t.Fatalf("expected cause to be logged, got %s", logBuf.String())
	}
}
