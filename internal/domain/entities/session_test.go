package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Unauthenticated(t *testing.T) {
	session := NewSession("some-sid", time.Hour)

	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.IsExpired())

	_, ok := session.Identity()
	assert.False(t, ok)
}

func TestSetIdentity_RoundTrip(t *testing.T) {
	session := NewSession("some-sid", time.Hour)

	require.NoError(t, session.SetIdentity(42, "alice", time.Hour))
	assert.True(t, session.IsAuthenticated())

	identity, ok := session.Identity()
	require.True(t, ok)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestIsExpired(t *testing.T) {
	session := NewSession("some-sid", time.Hour)
	require.NoError(t, session.SetIdentity(42, "alice", time.Hour))

	session.Expires = time.Now().Add(-time.Minute)
	assert.True(t, session.IsExpired())
	assert.False(t, session.IsAuthenticated(), "an expired session is not authenticated")
}

func TestIdentity_MalformedPayload(t *testing.T) {
	session := NewSession("some-sid", time.Hour)
	userID := uint(42)
	session.UserID = &userID
	session.Data = "{not json"

	_, ok := session.Identity()
	assert.False(t, ok)
}
