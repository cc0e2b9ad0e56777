package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/travel-planner/internal/application"
)

type sessionValidatorStub struct {
	principal application.Principal
	err       error
	lastToken string
}

func (s *sessionValidatorStub) ValidateSession(_ context.Context, token string) (application.Principal, error) {
	s.lastToken = token
	return s.principal, s.err
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	probe := func(captured *application.Principal) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principal, ok := PrincipalFromContext(r.Context()); ok {
				*captured = principal
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("injects the demo principal when no token is present", func(t *testing.T) {
		t.Parallel()

		demo := application.Principal{UserID: "demo-user"}
		var seen application.Principal
		handler := RequireSession(nil, &demo, nil)(probe(&seen))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "demo-user", seen.UserID)
	})

	t.Run("rejects missing tokens when no demo principal is configured", func(t *testing.T) {
		t.Parallel()

		var seen application.Principal
		handler := RequireSession(&sessionValidatorStub{}, nil, nil)(probe(&seen))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, seen.UserID)
	})

	t.Run("resolves bearer tokens through the validator", func(t *testing.T) {
		t.Parallel()

		validator := &sessionValidatorStub{principal: application.Principal{UserID: "user-1"}}
		var seen application.Principal
		handler := RequireSession(validator, nil, nil)(probe(&seen))

		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		req.Header.Set("Authorization", "Bearer token-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token-1", validator.lastToken)
		assert.Equal(t, "user-1", seen.UserID)
	})

	t.Run("prefers a live token over the demo principal", func(t *testing.T) {
		t.Parallel()

		demo := application.Principal{UserID: "demo-user"}
		validator := &sessionValidatorStub{principal: application.Principal{UserID: "user-1"}}
		var seen application.Principal
		handler := RequireSession(validator, &demo, nil)(probe(&seen))

		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cookie-token", validator.lastToken)
		assert.Equal(t, "user-1", seen.UserID)
	})

	t.Run("maps expired sessions to 401", func(t *testing.T) {
		t.Parallel()

		validator := &sessionValidatorStub{err: application.ErrSessionExpired}
		handler := RequireSession(validator, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run for an expired session")
		}))

		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExtractTokenFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("reads the Authorization header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")
		assert.Equal(t, "abc", extractTokenFromRequest(req))
	})

	t.Run("falls back to the session cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "xyz"})
		assert.Equal(t, "xyz", extractTokenFromRequest(req))
	})

	t.Run("ignores non-bearer authorization schemes", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		assert.Empty(t, extractTokenFromRequest(req))
	})
}
