package repositories

import (
	"context"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *entities.Follow) error
	// Delete removes the edge (followerID, followingID). Returns errs.ErrNotFound
	// when no such edge exists.
	Delete(ctx context.Context, followerID, followingID uint) error
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowingIDs(ctx context.Context, followerID uint) ([]uint, error)
	ListFollowerIDs(ctx context.Context, followingID uint) ([]uint, error)
}
