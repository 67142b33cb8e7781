// Package utils provides general-purpose helper utilities used across the
// portal server: context keys, credential hashing, token generation, and
// HTTP response writing.
package utils

import (
	"context"

	"github.com/communication-ltd/portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key under which the authentication middleware
// stores the session's owning user. Downstream handlers retrieve it with
// GetSessionUserFromContext instead of re-resolving the session token.
var SessionUserCtxKey = contextKey("sessionUser")

// SessionTokenCtxKey is the key under which the authentication middleware
// stores the raw session token, so that logout can revoke it without
// re-reading the cookie.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetSessionUserFromContext retrieves the authenticated user from the
// context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(models.User)
	return user, ok
}

// GetSessionTokenFromContext retrieves the raw session token from the
// context, following the same ok-flag convention as
// GetSessionUserFromContext.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok
}
