package utils

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// sessionTokenLength is the number of random bytes in a session token
// (256 bits of entropy, hex-encoded to 64 characters).
const sessionTokenLength = 32

// resetTokenRandomLength is the number of random bytes mixed into a
// password-reset token before digesting.
const resetTokenRandomLength = 20

// GenerateSessionToken returns a hex-encoded high-entropy opaque token
// used as the primary key of a session row.
//
// Returns an error only if the operating system's entropy source fails.
func GenerateSessionToken() (string, error) {
	token := make([]byte, sessionTokenLength)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(token), nil
}

// GenerateResetToken derives a password-reset token for the given user.
//
// The token is the hex-encoded SHA-1 digest of "userID-randomHex-millis".
// SHA-1 is acceptable here only because the input carries its own
// high-entropy random component; the digest is not relied upon for
// collision resistance.
func GenerateResetToken(userID int64) (string, error) {
	random := make([]byte, resetTokenRandomLength)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("error generating reset token: %w", err)
	}

	data := fmt.Sprintf("%d-%s-%d", userID, hex.EncodeToString(random), time.Now().UnixMilli())

	digest := sha1.Sum([]byte(data))
	return hex.EncodeToString(digest[:]), nil
}
