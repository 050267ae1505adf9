package session

import "errors"

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("session: failed to read config file")

	// ErrParseConfig is returned for malformed YAML.
	ErrParseConfig = errors.New("session: failed to parse config file")

	// ErrInvalidConfig is returned when a numeric setting is out of range.
	ErrInvalidConfig = errors.New("session: invalid config value")
)
