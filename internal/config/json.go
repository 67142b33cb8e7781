package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		BaseURL string `json:"base_url"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		PasswordMinLength int      `json:"password_min_length"`
		HistoryDepth      int      `json:"history_depth"`
		MaxLoginAttempts  int      `json:"max_login_attempts"`
		LockoutWindow     Duration `json:"lockout_window"`
		SessionTTL        Duration `json:"session_ttl"`
		ResetTokenTTL     Duration `json:"reset_token_ttl"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`

	Workers struct {
		RetentionInterval Duration `json:"retention_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			BaseURL: jsonCfg.App.BaseURL,
			Version: jsonCfg.App.Version,
		},
		Auth: Auth{
			PasswordMinLength: jsonCfg.Auth.PasswordMinLength,
			HistoryDepth:      jsonCfg.Auth.HistoryDepth,
			MaxLoginAttempts:  jsonCfg.Auth.MaxLoginAttempts,
			LockoutWindow:     time.Duration(jsonCfg.Auth.LockoutWindow),
			SessionTTL:        time.Duration(jsonCfg.Auth.SessionTTL),
			ResetTokenTTL:     time.Duration(jsonCfg.Auth.ResetTokenTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
		Workers: Workers{
			RetentionInterval: time.Duration(jsonCfg.Workers.RetentionInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
