package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
)

func TestNewValidatedUser(t *testing.T) {
	user := NewUser("alice", "alice@x.com", "somehash")

	validated, err := NewValidatedUser(user)
	require.NoError(t, err)
	assert.Equal(t, "alice", validated.GetUser().Username)
}

func TestNewValidatedUser_CollectsAllProblems(t *testing.T) {
	user := NewUser("", "", "")

	_, err := NewValidatedUser(user)
	require.Error(t, err)

	problems, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, problems, 3)
	assert.Contains(t, problems, "username cannot be empty")
	assert.Contains(t, problems, "email cannot be empty")
	assert.Contains(t, problems, "password cannot be empty")
}

func TestNewValidatedUser_RejectsBadEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "missing@tld", "@x.com", "a b@x.com"} {
		user := NewUser("alice", email, "somehash")
		_, err := NewValidatedUser(user)
		assert.Error(t, err, "email %q should not validate", email)
	}

	user := NewUser("alice", "alice@x.com", "somehash")
	_, err := NewValidatedUser(user)
	assert.NoError(t, err)
}

func TestUpdateProfile_Revalidates(t *testing.T) {
	user := NewUser("alice", "alice@x.com", "somehash")

	err := user.UpdateProfile("alice2", "broken-email")
	require.Error(t, err)

	err = user.UpdateProfile("alice2", "alice2@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.Equal(t, "alice2@x.com", user.Email)
}
