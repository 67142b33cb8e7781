package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// saltLength is the number of random bytes in a freshly generated salt
// (128 bits of entropy, hex-encoded to 32 characters).
const saltLength = 16

// GenerateSalt returns a hex-encoded random salt of saltLength bytes.
//
// Returns an error only if the operating system's entropy source fails.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	return hex.EncodeToString(salt), nil
}

// HashPassword derives a keyed digest for the given plaintext password.
//
// A fresh random salt is generated and used as the HMAC-SHA256 key; the
// digest is returned hex-encoded alongside the salt. The same password
// hashed with the same salt always yields the same digest, which is what
// allows password-history reuse detection by recomputation.
//
// Returns (digest, salt, nil) on success or an error if salt generation
// fails.
func HashPassword(password string) (string, string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", "", err
	}

	return hashWithSalt(password, salt), salt, nil
}

// VerifyPassword recomputes the keyed digest of password under the given
// salt and compares it with the stored digest in constant time.
func VerifyPassword(password string, storedDigest string, salt string) bool {
	computed := hashWithSalt(password, salt)
	return hmac.Equal([]byte(computed), []byte(storedDigest))
}

// hashWithSalt computes hex(HMAC-SHA256(key=salt, password)).
func hashWithSalt(password string, salt string) string {
	hasher := hmac.New(sha256.New, []byte(salt))
	hasher.Write([]byte(password))
	return hex.EncodeToString(hasher.Sum(nil))
}
