package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs provided")

	// ErrInvalidServerConfigs is returned when the HTTP listen address is
	// missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs provided")

	// ErrInvalidAuthConfigs is returned when a policy knob is outside its
	// meaningful range (e.g. zero minimum password length).
	ErrInvalidAuthConfigs = errors.New("invalid auth configs provided")
)
