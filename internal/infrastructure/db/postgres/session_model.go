package postgres

import (
	"time"
)

// SessionModel mirrors the classic server-side session table: the opaque sid
// is the primary key, user_id is nullable for guest sessions, data is an
// opaque serialized payload.
type SessionModel struct {
	SID       string `gorm:"column:sid;primaryKey"`
	UserID    *uint  `gorm:"index"`
	Expires   time.Time
	Data      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}
