package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidShareConfigs indicates a bad viewer URL or compression.
	ErrInvalidShareConfigs = errors.New("invalid share configuration")
	// ErrInvalidShortenerConfigs indicates a bad shortener URL or timeout.
	ErrInvalidShortenerConfigs = errors.New("invalid shortener configuration")
	// ErrInvalidDaemonConfigs indicates a malformed daemon address.
	ErrInvalidDaemonConfigs = errors.New("invalid daemon configuration")
	// ErrInvalidSourceConfigs indicates an unknown tab source kind.
	ErrInvalidSourceConfigs = errors.New("invalid tab source configuration")
	// ErrInvalidConfigFile indicates a config file that can not be decoded.
	ErrInvalidConfigFile = errors.New("invalid config file")
)
