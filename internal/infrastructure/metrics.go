package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for the auth and social-graph flows.
var (
	// LoginAttempts counts logins by outcome (success, invalid_credentials,
	// rate_limited, error).
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// Registrations counts registrations by outcome (success, duplicate,
	// validation_failed, error).
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_registrations_total",
		Help: "Total number of registration attempts by outcome",
	}, []string{"outcome"})

	// FollowToggles counts toggle-follow calls by result (followed, unfollowed,
	// rejected).
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_follow_toggles_total",
		Help: "Total number of follow toggles by result",
	}, []string{"result"})

	// ActiveSessions tracks sessions created minus sessions destroyed.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "auth_active_sessions",
		Help: "Number of live authenticated sessions",
	})
)
