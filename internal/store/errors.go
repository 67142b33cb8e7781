package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because the username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session token does not resolve to
	// a live session. Expired and never-issued tokens are deliberately
	// indistinguishable.
	ErrSessionNotFound = errors.New("no active session was found")

	// ErrResetNotFound is returned when no live password-reset row matches
	// the given user and token. Expired, consumed, and never-issued tokens
	// are deliberately indistinguishable.
	ErrResetNotFound = errors.New("no active password reset was found")

	// ErrAttemptNotFound is returned when no failed-login record exists for
	// a username.
	ErrAttemptNotFound = errors.New("no login attempt record was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
