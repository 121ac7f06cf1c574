package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/interfaces"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/repositories"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
)

const DefaultSessionTTL = 24 * time.Hour

type SessionService struct {
	sessions repositories.SessionRepository
	cache    *infrastructure.RedisService
	ttl      time.Duration
}

func NewSessionService(sessions repositories.SessionRepository, cache *infrastructure.RedisService, ttl time.Duration) interfaces.SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		sessions: sessions,
		cache:    cache,
		ttl:      ttl,
	}
}

// Create only mints the token. The backing row appears lazily on the first
// SetIdentity, so untouched guest sessions never hit storage.
func (s *SessionService) Create() string {
	return uuid.NewString()
}

func (s *SessionService) SetIdentity(ctx context.Context, token string, userID uint, username string) (*entities.Session, error) {
	session, err := s.sessions.FindBySID(ctx, token)
	created := false
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		session = entities.NewSession(token, s.ttl)
		created = true
	}

	if err := session.SetIdentity(userID, username, s.ttl); err != nil {
		return nil, err
	}

	// The synchronous save is the authentication contract: nothing may treat
	// this session as logged in until the row is on disk.
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	// Re-authenticating an existing sid updates a row that is already counted.
	if created {
		infrastructure.ActiveSessions.Inc()
	}

	if err := s.cache.SetSession(ctx, session); err != nil {
		log.Printf("session cache write failed: %v", err)
	}

	return session, nil
}

func (s *SessionService) Get(ctx context.Context, token string) (*entities.Session, error) {
	if token == "" {
		return nil, errs.ErrNotFound
	}

	if cached, err := s.cache.GetSession(ctx, token); err == nil {
		if cached.IsExpired() {
			return nil, errs.ErrNotFound
		}
		return cached, nil
	} else if !infrastructure.IsMiss(err) {
		log.Printf("session cache read failed: %v", err)
	}

	session, err := s.sessions.FindBySID(ctx, token)
	if err != nil {
		return nil, err
	}
	// An expired session is indistinguishable from a destroyed one.
	if session.IsExpired() {
		return nil, errs.ErrNotFound
	}
	return session, nil
}

// PruneExpired removes lapsed rows and settles the active-session gauge by
// the number removed.
func (s *SessionService) PruneExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		infrastructure.ActiveSessions.Sub(float64(removed))
	}
	return removed, nil
}

func (s *SessionService) Destroy(ctx context.Context, token string) {
	if err := s.cache.DeleteSession(ctx, token); err != nil {
		log.Printf("session cache delete failed: %v", err)
	}

	err := s.sessions.Delete(ctx, token)
	switch {
	case err == nil:
		infrastructure.ActiveSessions.Dec()
	case errors.Is(err, errs.ErrNotFound):
		// Already gone, nothing to do.
	default:
		// Best effort: the cookie is cleared by the caller either way.
		log.Printf("session destroy failed: %v", err)
	}
}
