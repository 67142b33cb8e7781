package models

import "time"

// LoginAttempt is the per-username failed-login counter backing the login
// throttle. The row is created on first failure, incremented on each
// subsequent failure and deleted on successful login.
type LoginAttempt struct {
	// Username is the login the failures were recorded against and the
	// primary key of the row. It is tracked even for unknown usernames
	// so that credential guessing against non-existent accounts is
	// throttled identically.
	Username string `json:"username"`

	// Attempts is the consecutive-failure counter.
	Attempts int `json:"attempts"`

	// LastAttempt is the timestamp of the most recent failure; the
	// lockout window is measured from this moment.
	LastAttempt time.Time `json:"last_attempt"`
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (l LoginAttempt) TableName() string {
	return "login_attempts"
}
