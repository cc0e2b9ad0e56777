package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/travel-planner/internal/persistence"
)

func newSessionTestRepo(t *testing.T) *SessionRepository {
	t.Helper()

	pool := newTestPool(t)
	seedUser(t, pool, "user-1", "one@navi.example")

	return NewSessionRepository(pool)
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := newSessionTestRepo(t)
	ctx := context.Background()

	expiresAt := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	created, err := repo.CreateSession(ctx, persistence.Session{
		ID:        "session-1",
		UserID:    "user-1",
		Token:     "token-1",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID)
	assert.True(t, created.ExpiresAt.Equal(expiresAt))
	assert.Nil(t, created.RevokedAt)

	got, err := repo.GetSession(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", got.ID)
}

func TestSessionRepository_GetNotFound(t *testing.T) {
	repo := newSessionTestRepo(t)

	_, err := repo.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestSessionRepository_DuplicateToken(t *testing.T) {
	repo := newSessionTestRepo(t)
	ctx := context.Background()
	expiresAt := time.Now().UTC().Add(time.Hour)

	_, err := repo.CreateSession(ctx, persistence.Session{
		ID: "session-1", UserID: "user-1", Token: "token-1", ExpiresAt: expiresAt,
	})
	require.NoError(t, err)

	_, err = repo.CreateSession(ctx, persistence.Session{
		ID: "session-2", UserID: "user-1", Token: "token-1", ExpiresAt: expiresAt,
	})
	assert.ErrorIs(t, err, persistence.ErrDuplicate)
}

func TestSessionRepository_Revoke(t *testing.T) {
	repo := newSessionTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateSession(ctx, persistence.Session{
		ID:        "session-1",
		UserID:    "user-1",
		Token:     "token-1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	require.NoError(t, err)

	revoked, err := repo.RevokeSession(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, revoked.RevokedAt)

	// Already revoked, so the second call finds nothing to update.
	_, err = repo.RevokeSession(ctx, "token-1")
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	_, err = repo.RevokeSession(ctx, "missing")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestSessionRepository_DeleteExpiredSessions(t *testing.T) {
	repo := newSessionTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.CreateSession(ctx, persistence.Session{
		ID: "session-old", UserID: "user-1", Token: "token-old", ExpiresAt: now.Add(-time.Hour),
	})
	require.NoError(t, err)
	_, err = repo.CreateSession(ctx, persistence.Session{
		ID: "session-live", UserID: "user-1", Token: "token-live", ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteExpiredSessions(ctx))

	_, err = repo.GetSession(ctx, "token-old")
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	_, err = repo.GetSession(ctx, "token-live")
	assert.NoError(t, err)
}
