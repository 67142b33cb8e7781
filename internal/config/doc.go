// Package config loads and merges the portal server configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged through a builder; for every field the first source
// that provides a non-zero value wins. Authentication-policy fields that
// remain unset fall back to application defaults (minimum password length
// 10, history depth 3, three login attempts, 30-minute lockout, 24-hour
// sessions, 1-hour reset tokens).
package config
