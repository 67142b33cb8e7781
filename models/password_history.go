package models

import "time"

// PasswordHistoryEntry archives a superseded credential pair. Entries are
// appended when a password changes (the old hash is archived, never the
// new one), are immutable, and are read newest-first bounded by the
// configured history depth.
type PasswordHistoryEntry struct {
	// ID is the internal unique identifier of the entry.
	ID int64 `json:"id"`

	// UserID is the owning user's identifier.
	UserID int64 `json:"user_id"`

	// PasswordHash is the retired hex-encoded digest.
	PasswordHash string `json:"-"`

	// Salt is the key the retired digest was derived with.
	Salt string `json:"-"`

	// CreatedAt is the timestamp when the entry was archived.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordHistoryEntry model.
func (p PasswordHistoryEntry) TableName() string {
	return "password_history"
}
