package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.PasswordMinLength < 1 || cfg.Auth.HistoryDepth < 0 || cfg.Auth.MaxLoginAttempts < 1 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
