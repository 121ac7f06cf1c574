package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles repeated attempts per key (a login identifier or a
// client address). Each key gets its own token bucket.
type RateLimiter struct {
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	mutex    sync.Mutex
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rateLimitWindow := GetEnvAsDuration("RATE_LIMIT_WINDOW", window)
	rateLimitMaxRequests := GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", limit)

	// A zero or negative override would make the interval division below
	// meaningless; fall back to the caller's default instead.
	if rateLimitMaxRequests <= 0 {
		rateLimitMaxRequests = limit
	}
	if rateLimitWindow <= 0 {
		rateLimitWindow = window
	}

	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(rateLimitWindow / time.Duration(rateLimitMaxRequests)),
		burst:    rateLimitMaxRequests,
	}

	// Start cleanup goroutine
	go rl.cleanupStaleEntries()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-1 * time.Hour)
		for key, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mutex.Unlock()
	}
}
