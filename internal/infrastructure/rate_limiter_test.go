package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("alice"), "attempt %d should pass", i+1)
	}
	assert.False(t, rl.Allow("alice"), "attempt past the burst should be blocked")
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	assert.True(t, rl.Allow("alice"))
	assert.False(t, rl.Allow("alice"))
	assert.True(t, rl.Allow("bob"), "bob has his own bucket")
}

func TestRateLimiter_IgnoresNonPositiveOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "0")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")

	rl := NewRateLimiter(time.Minute, 2)

	assert.True(t, rl.Allow("alice"))
	assert.True(t, rl.Allow("alice"))
	assert.False(t, rl.Allow("alice"), "the caller's limit still applies")
}
