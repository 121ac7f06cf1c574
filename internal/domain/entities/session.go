package entities

import (
	"encoding/json"
	"time"
)

// SessionPayload is the serialized slice of state a session carries. The data
// column stays opaque to the storage layer; only the session code reads it.
type SessionPayload struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// Session is a server-side session row keyed by an opaque token. A session
// with no UserID is unauthenticated (a transient guest session).
type Session struct {
	SID       string
	UserID    *uint
	Expires   time.Time
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(sid string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		SID:       sid,
		Expires:   now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) IsExpired() bool {
	return !s.Expires.IsZero() && time.Now().After(s.Expires)
}

func (s *Session) IsAuthenticated() bool {
	return s.UserID != nil && !s.IsExpired()
}

// SetIdentity transitions the session to the authenticated state.
func (s *Session) SetIdentity(userID uint, username string, ttl time.Duration) error {
	payload, err := json.Marshal(SessionPayload{UserID: userID, Username: username})
	if err != nil {
		return err
	}
	now := time.Now()
	s.UserID = &userID
	s.Data = string(payload)
	s.Expires = now.Add(ttl)
	s.UpdatedAt = now
	return nil
}

// Identity decodes the payload. Returns ok=false for unauthenticated sessions
// or a payload that cannot be decoded.
func (s *Session) Identity() (SessionPayload, bool) {
	if s.UserID == nil || s.Data == "" {
		return SessionPayload{}, false
	}
	var payload SessionPayload
	if err := json.Unmarshal([]byte(s.Data), &payload); err != nil {
		return SessionPayload{}, false
	}
	return payload, true
}
