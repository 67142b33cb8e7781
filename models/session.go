package models

import "time"

// Session represents an opaque bearer credential tied to a user.
// The token itself is the primary key; possession of the token is the
// only proof of authentication. Expiry is checked on every lookup —
// expired rows are treated as absent, not actively deleted.
type Session struct {
	// ID is the opaque session token (32 random bytes, hex-encoded).
	ID string `json:"-"`

	// UserID is the owning user's identifier.
	UserID int64 `json:"user_id"`

	// ExpiresAt is the moment after which the session no longer resolves.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
