package config

import "fmt"

// CurrentVersion is the config file format version this build reads and writes.
const CurrentVersion = 1

// Output formats understood by the calc command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the entire user configuration file.
// It stores display and logging preferences only; SGPA values typed into
// the form are never written here.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	AltScreen    bool   `yaml:"alt_screen"`              // Run the form in the terminal's alternate screen
	LogLevel     string `yaml:"log_level,omitempty"`     // debug, info, warn, error; empty is silent
	LogFile      string `yaml:"log_file,omitempty"`      // Where the interactive form writes logs
	OutputFormat string `yaml:"output_format,omitempty"` // Default calc output: text, json, yaml
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		AltScreen:    true,
		OutputFormat: FormatText,
	}
}

// Validate checks the config for values this build cannot use.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return newConfigError("version", fmt.Sprintf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion))
	}
	if c.Preferences == nil {
		return nil
	}

	if err := ValidateOutputFormat(c.Preferences.OutputFormat); err != nil {
		return err
	}

	switch c.Preferences.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return newConfigError("preferences.log_level", fmt.Sprintf("unknown log level %q", c.Preferences.LogLevel))
	}

	return nil
}

// ValidateOutputFormat checks a calc output format name. Empty means text.
func ValidateOutputFormat(format string) error {
	switch format {
	case "", FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return newConfigError("preferences.output_format", fmt.Sprintf("unknown output format %q (use text, json or yaml)", format))
	}
}
