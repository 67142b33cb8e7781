package models

import "time"

// User represents a portal account used for authentication.
// Credential material (PasswordHash, Salt) must never cross the HTTP
// boundary; both fields are excluded from JSON serialization.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used for password-reset delivery.
	Email string `json:"email"`

	// PasswordHash is the hex-encoded HMAC-SHA256 digest of the
	// password, keyed with Salt. Never plaintext.
	PasswordHash string `json:"-"`

	// Salt is the hex-encoded random key used to derive PasswordHash.
	Salt string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
