package interfaces

import (
	"context"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
)

// SessionManager owns the server-side session lifecycle: unauthenticated
// sessions are ephemeral (no row until something is stored), authenticated
// sessions are persisted synchronously, expired sessions read as absent.
type SessionManager interface {
	// Create issues a fresh opaque token. No backing row is written yet.
	Create() string
	// SetIdentity persists the authenticated state before returning; the
	// caller must not act on "logged in" until it succeeds.
	SetIdentity(ctx context.Context, token string, userID uint, username string) (*entities.Session, error)
	// Get returns the session for token, or errs.ErrNotFound when the token
	// is unknown or the session has expired.
	Get(ctx context.Context, token string) (*entities.Session, error)
	// Destroy removes the backing record. Storage failures are logged and
	// swallowed; the client-side reference is cleared regardless.
	Destroy(ctx context.Context, token string)
	// PruneExpired removes every lapsed session row and reports how many.
	PruneExpired(ctx context.Context) (int64, error)
}
