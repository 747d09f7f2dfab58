package config

import "errors"

// ConfigError reports a config value that could not be used
type ConfigError struct {
	Field   string // Dotted YAML path of the offending field
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func newConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// IsConfigError checks if an error is a ConfigError
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
