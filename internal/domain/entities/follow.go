package entities

import (
	"time"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
)

// Follow is a directed edge: FollowerID follows FollowingID. At most one edge
// may exist per ordered pair, and self-loops are forbidden.
type Follow struct {
	ID          uint
	FollowerID  uint
	FollowingID uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewFollow(followerID, followingID uint) (*Follow, error) {
	if followerID == followingID {
		return nil, errs.ErrSelfFollow
	}
	now := time.Now()
	return &Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
