package models

// PolicyResult is the outcome of a password-policy or password-history
// check. Rejections are ordinary values, never errors: the Message is
// safe to show to the end user and maps to a 4xx response at the HTTP
// layer. Only infrastructure faults are returned as Go errors.
type PolicyResult struct {
	// Valid reports whether the candidate password passed every check.
	Valid bool `json:"valid"`

	// Message is the human-readable reason for the first failed check,
	// or a confirmation string when Valid is true.
	Message string `json:"message"`
}

// ThrottleResult is the outcome of a login-throttle check.
type ThrottleResult struct {
	// Allowed reports whether a login attempt may proceed.
	Allowed bool `json:"allowed"`

	// Message explains the rejection; shown to the user on HTTP 429.
	Message string `json:"message"`
}
