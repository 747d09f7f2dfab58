package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	want := filepath.Join(dir, "cgpa", "config.yaml")
	if got != want {
		t.Errorf("GetConfigPath() = %v, want %v", got, want)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.Preferences == nil {
		t.Fatal("Preferences should not be nil")
	}
	if !cfg.Preferences.AltScreen {
		t.Error("AltScreen should default to true")
	}
	if cfg.Preferences.OutputFormat != FormatText {
		t.Errorf("OutputFormat = %q, want %q", cfg.Preferences.OutputFormat, FormatText)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Version != CurrentVersion || cfg.Preferences == nil {
		t.Errorf("LoadFrom(missing) = %+v, want defaults", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := NewConfig()
	cfg.Preferences.AltScreen = false
	cfg.Preferences.LogLevel = "debug"
	cfg.Preferences.LogFile = "/tmp/cgpa.log"
	cfg.Preferences.OutputFormat = FormatJSON

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# CGPA calculator configuration") {
		t.Error("saved file should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *loaded.Preferences != *cfg.Preferences {
		t.Errorf("loaded Preferences = %+v, want %+v", *loaded.Preferences, *cfg.Preferences)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Preferences == nil || !cfg.Preferences.AltScreen {
		t.Errorf("Preferences = %+v, want defaults", cfg.Preferences)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantConfig bool // error should be a ConfigError
	}{
		{"Malformed YAML", "version: [1\n", false},
		{"Wrong version", "version: 2\n", true},
		{"Bad output format", "version: 1\npreferences:\n  output_format: xml\n", true},
		{"Bad log level", "version: 1\npreferences:\n  log_level: loud\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadFrom(path)
			if err == nil {
				t.Fatal("LoadFrom() expected error, got nil")
			}
			if IsConfigError(err) != tt.wantConfig {
				t.Errorf("IsConfigError(%v) = %v, want %v", err, IsConfigError(err), tt.wantConfig)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"", FormatText, FormatJSON, FormatYAML} {
		if err := ValidateOutputFormat(f); err != nil {
			t.Errorf("ValidateOutputFormat(%q) error = %v", f, err)
		}
	}
	if err := ValidateOutputFormat("csv"); err == nil {
		t.Error("ValidateOutputFormat(csv) expected error")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := newConfigError("preferences.log_level", "unknown log level")
	if got := err.Error(); got != "preferences.log_level: unknown log level" {
		t.Errorf("Error() = %q", got)
	}

	bare := &ConfigError{Message: "broken"}
	if got := bare.Error(); got != "broken" {
		t.Errorf("Error() = %q, want broken", got)
	}
}
