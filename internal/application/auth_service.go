package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// AuthService authenticates travelers and manages their sessions.
type AuthService struct {
	users       persistence.UserRepository
	sessions    persistence.SessionRepository
	idGenerator func() string
	now         func() time.Time
	sessionTTL  time.Duration
	tokenSource func() (string, error)
	logger      *slog.Logger
}

// NewAuthService wires dependencies for authentication.
func NewAuthService(users persistence.UserRepository, sessions persistence.SessionRepository, idGenerator func() string, now func() time.Time, sessionTTL time.Duration) *AuthService {
	return NewAuthServiceWithLogger(users, sessions, idGenerator, now, sessionTTL, nil)
}

// NewAuthServiceWithLogger constructs an AuthService with a specified logger.
func NewAuthServiceWithLogger(users persistence.UserRepository, sessions persistence.SessionRepository, idGenerator func() string, now func() time.Time, sessionTTL time.Duration, logger *slog.Logger) *AuthService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		users:       users,
		sessions:    sessions,
		idGenerator: idGenerator,
		now:         now,
		sessionTTL:  sessionTTL,
		tokenSource: randomToken,
		logger:      defaultLogger(logger),
	}
}

func (s *AuthService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AuthService", operation, attrs...)
}

// Authenticate checks credentials and issues a fresh session. Unknown emails
// and bad passwords both surface ErrInvalidCredentials to avoid revealing
// which accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, params AuthenticateParams) (persistence.Session, error) {
	if s == nil || s.users == nil || s.sessions == nil {
		return persistence.Session{}, fmt.Errorf("auth repositories not configured")
	}

	vErr := &ValidationError{}
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		vErr.add("email", "email is required")
	}
	if params.Password == "" {
		vErr.add("password", "password is required")
	}
	if vErr.HasErrors() {
		return persistence.Session{}, vErr
	}

	logger := s.loggerWith(ctx, "Authenticate", "email", email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			logger.WarnContext(ctx, "login rejected", "error_kind", ErrorKind(ErrInvalidCredentials))
			return persistence.Session{}, ErrInvalidCredentials
		}
		return persistence.Session{}, mapRepoError(err)
	}

	if err := VerifyPassword(user.PasswordHash, params.Password); err != nil {
		logger.WarnContext(ctx, "login rejected", "error_kind", ErrorKind(ErrInvalidCredentials))
		return persistence.Session{}, ErrInvalidCredentials
	}

	token, err := s.tokenSource()
	if err != nil {
		return persistence.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	createdAt := s.now().UTC()
	session := persistence.Session{
		ID:        s.idGenerator(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: createdAt.Add(s.sessionTTL),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	stored, err := s.sessions.CreateSession(ctx, session)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create session", "error", err, "error_kind", ErrorKind(err))
		return persistence.Session{}, mapRepoError(err)
	}

	logger.InfoContext(ctx, "session issued", "user_id", user.ID, "session_id", stored.ID)
	return stored, nil
}

// ValidateSession resolves a bearer token to its principal. Expired and
// revoked sessions are rejected with distinct sentinels.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (Principal, error) {
	if s == nil || s.sessions == nil {
		return Principal{}, fmt.Errorf("auth repositories not configured")
	}
	if token == "" {
		return Principal{}, ErrUnauthorized
	}

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Principal{}, ErrUnauthorized
		}
		return Principal{}, mapRepoError(err)
	}

	if session.RevokedAt != nil {
		return Principal{}, ErrSessionRevoked
	}
	if !s.now().UTC().Before(session.ExpiresAt) {
		return Principal{}, ErrSessionExpired
	}

	return Principal{UserID: session.UserID}, nil
}

// RevokeSession marks a session as logged out. Revoking an unknown or
// already-revoked token reports not found.
func (s *AuthService) RevokeSession(ctx context.Context, token string) error {
	if s == nil || s.sessions == nil {
		return fmt.Errorf("auth repositories not configured")
	}
	if token == "" {
		return ErrUnauthorized
	}

	logger := s.loggerWith(ctx, "RevokeSession")
	session, err := s.sessions.RevokeSession(ctx, token)
	if err != nil {
		return mapRepoError(err)
	}
	logger.InfoContext(ctx, "session revoked", "session_id", session.ID)
	return nil
}

// PurgeExpiredSessions removes sessions past their expiry.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) error {
	if s == nil || s.sessions == nil {
		return fmt.Errorf("auth repositories not configured")
	}
	if err := s.sessions.DeleteExpiredSessions(ctx); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
