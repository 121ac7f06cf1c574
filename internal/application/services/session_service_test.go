package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
)

func TestSessionCreate_IsLazy(t *testing.T) {
	env := newTestEnv(t)

	token := env.sessionManager.Create()
	assert.NotEmpty(t, token)

	// Nothing was stored yet: minting a token writes no row.
	assert.Zero(t, env.countSessions(t))

	_, err := env.sessionManager.Get(context.Background(), token)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSessionTokensAreUnique(t *testing.T) {
	env := newTestEnv(t)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := env.sessionManager.Create()
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestSetIdentity_PersistsBeforeReturning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.sessionManager.Create()
	session, err := env.sessionManager.SetIdentity(ctx, token, 42, "alice")
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())

	// The row is on disk: a fresh read through the repository sees it.
	stored, err := env.sessions.FindBySID(ctx, token)
	require.NoError(t, err)
	identity, ok := stored.Identity()
	require.True(t, ok)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestGet_ExpiredReadsAsAbsent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.sessionManager.Create()
	_, err := env.sessionManager.SetIdentity(ctx, token, 42, "alice")
	require.NoError(t, err)

	// Force the row past its expiry.
	stored, err := env.sessions.FindBySID(ctx, token)
	require.NoError(t, err)
	stored.Expires = time.Now().Add(-time.Minute)
	require.NoError(t, env.sessions.Save(ctx, stored))

	_, err = env.sessionManager.Get(ctx, token)
	assert.ErrorIs(t, err, errs.ErrNotFound, "expired must look exactly like destroyed")
}

func TestDestroy_IsBestEffort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.sessionManager.Create()
	_, err := env.sessionManager.SetIdentity(ctx, token, 42, "alice")
	require.NoError(t, err)

	env.sessionManager.Destroy(ctx, token)
	_, err = env.sessionManager.Get(ctx, token)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// Destroying again (or destroying garbage) never panics or errors out.
	env.sessionManager.Destroy(ctx, token)
	env.sessionManager.Destroy(ctx, "never-existed")
}

func TestGet_EmptyToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessionManager.Get(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSetIdentity_ReauthenticatesExistingSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.sessionManager.Create()
	_, err := env.sessionManager.SetIdentity(ctx, token, 42, "alice")
	require.NoError(t, err)

	// Same sid, new identity: the row is updated, not duplicated.
	_, err = env.sessionManager.SetIdentity(ctx, token, 7, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), env.countSessions(t))

	session, err := env.sessionManager.Get(ctx, token)
	require.NoError(t, err)
	identity, ok := session.Identity()
	require.True(t, ok)
	assert.Equal(t, "bob", identity.Username)
}

func TestActiveSessionsGauge_CountsDistinctRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := testutil.ToFloat64(infrastructure.ActiveSessions)

	token := env.sessionManager.Create()
	_, err := env.sessionManager.SetIdentity(ctx, token, 42, "alice")
	require.NoError(t, err)

	// Re-authenticating the same sid is an update, not a new session.
	_, err = env.sessionManager.SetIdentity(ctx, token, 42, "alice")
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(infrastructure.ActiveSessions))

	env.sessionManager.Destroy(ctx, token)
	assert.Equal(t, before, testutil.ToFloat64(infrastructure.ActiveSessions))
}

func TestPruneExpired_SettlesGauge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := testutil.ToFloat64(infrastructure.ActiveSessions)

	live := env.sessionManager.Create()
	_, err := env.sessionManager.SetIdentity(ctx, live, 1, "alice")
	require.NoError(t, err)

	lapsed := env.sessionManager.Create()
	_, err = env.sessionManager.SetIdentity(ctx, lapsed, 2, "bob")
	require.NoError(t, err)

	stored, err := env.sessions.FindBySID(ctx, lapsed)
	require.NoError(t, err)
	stored.Expires = time.Now().Add(-time.Minute)
	require.NoError(t, env.sessions.Save(ctx, stored))

	removed, err := env.sessionManager.PruneExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, before+1, testutil.ToFloat64(infrastructure.ActiveSessions))
	assert.Equal(t, int64(1), env.countSessions(t))
}
