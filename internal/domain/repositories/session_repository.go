package repositories

import (
	"context"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
)

type SessionRepository interface {
	// Save upserts the session row by sid.
	Save(ctx context.Context, session *entities.Session) error
	FindBySID(ctx context.Context, sid string) (*entities.Session, error)
	Delete(ctx context.Context, sid string) error
	// DeleteExpired removes every session past its expiry; returns rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
