package models

import "time"

// PasswordReset is a single-use, time-limited credential that authorizes
// a password change without the current password. At most one outstanding
// reset exists per user: a new request overwrites the previous row.
type PasswordReset struct {
	// UserID is the owning user and the primary key of the row.
	UserID int64 `json:"user_id"`

	// Token is the hex-encoded SHA-1 reset token mailed to the user.
	Token string `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the timestamp of the reset request.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}
