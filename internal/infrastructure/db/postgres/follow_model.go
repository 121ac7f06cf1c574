package postgres

import (
	"time"
)

// FollowModel is the junction row for the self-referencing many-to-many
// relation. The composite unique index is the backstop against duplicate
// edges when two toggles race.
type FollowModel struct {
	ID          uint `gorm:"primaryKey"`
	FollowerID  uint `gorm:"not null;index;uniqueIndex:idx_follower_following"`
	FollowingID uint `gorm:"not null;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Follower  UserModel `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Following UserModel `gorm:"foreignKey:FollowingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (FollowModel) TableName() string {
	return "follows"
}
