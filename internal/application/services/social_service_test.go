package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/command"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
)

func toggle(t *testing.T, env *testEnv, follower, target uint) command.ToggleOutcome {
	t.Helper()
	result, err := env.socialService.ToggleFollow(context.Background(), &command.ToggleFollowCommand{
		FollowerID: follower,
		TargetID:   target,
	})
	require.NoError(t, err)
	return result.Outcome
}

func TestToggleFollow_Alternates(t *testing.T) {
	env := newTestEnv(t)

	alice := env.register(t, "alice", "alice@x.com", "secret1")
	bob := env.register(t, "bob", "bob@x.com", "secret1")

	assert.Equal(t, command.OutcomeFollowed, toggle(t, env, alice, bob))
	assert.Equal(t, command.OutcomeUnfollowed, toggle(t, env, alice, bob))
	assert.Equal(t, command.OutcomeFollowed, toggle(t, env, alice, bob))
}

func TestToggleFollow_SelfFollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice", "alice@x.com", "secret1")

	_, err := env.socialService.ToggleFollow(ctx, &command.ToggleFollowCommand{
		FollowerID: alice,
		TargetID:   alice,
	})
	assert.ErrorIs(t, err, errs.ErrSelfFollow)

	// Self-follow is rejected even for ids that do not exist at all.
	_, err = env.socialService.ToggleFollow(ctx, &command.ToggleFollowCommand{
		FollowerID: 9999,
		TargetID:   9999,
	})
	assert.ErrorIs(t, err, errs.ErrSelfFollow)
}

func TestToggleFollow_MissingUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice", "alice@x.com", "secret1")

	_, err := env.socialService.ToggleFollow(ctx, &command.ToggleFollowCommand{
		FollowerID: alice,
		TargetID:   9999,
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = env.socialService.ToggleFollow(ctx, &command.ToggleFollowCommand{
		FollowerID: 9999,
		TargetID:   alice,
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListOthers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice", "alice@x.com", "secret1")
	bob := env.register(t, "bob", "bob@x.com", "secret1")
	carol := env.register(t, "carol", "carol@x.com", "secret1")

	toggle(t, env, alice, carol)

	result, err := env.socialService.ListOthers(ctx, alice)
	require.NoError(t, err)

	require.Len(t, result.Users, 2)
	assert.Equal(t, "bob", result.Users[0].Username)
	assert.Equal(t, "carol", result.Users[1].Username)

	assert.True(t, result.FollowingIDs[carol])
	assert.False(t, result.FollowingIDs[bob])
}

func TestFollowingSetAfterTargetDeleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice", "alice@x.com", "secret1")
	bob := env.register(t, "bob", "bob@x.com", "secret1")

	toggle(t, env, alice, bob)

	following, err := env.socialService.ListFollowingIDs(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob}, following)

	require.NoError(t, env.userService.DeleteUser(ctx, bob))

	following, err = env.socialService.ListFollowingIDs(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, following, "deleting the target removes the edge")
}
