// Cgpa is a terminal calculator for cumulative grade point averages.
//
// It collects one SGPA per semester and averages the valid ones into a
// CGPA. Values outside 0-10, or that are not numbers, are left out.
//
// Usage:
//
//	cgpa [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'cgpa --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cgpa/internal/config"
	"github.com/muurk/cgpa/internal/logging"
	"github.com/muurk/cgpa/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cgpa",
	Short: "CGPA Calculator",
	Long: `A terminal calculator for cumulative grade point averages.

Enter one SGPA (0-10) per semester and calculate their average. Entries
that are empty, not numbers, or outside 0-10 are left out of the average.

If no command is specified, the interactive form will launch automatically.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runTUI(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cgpa %s\n", version.Full())
	},
}

// loadConfig reads the config named by --config, or the default one
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// resolveConfigPath returns the file --config points at, or the default location
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// effectiveLogLevel applies flag > config precedence; the environment
// variable is consulted by the logging package when both are empty
func effectiveLogLevel(cfg *config.Config) string {
	if logLevel != "" {
		return logLevel
	}
	return cfg.Preferences.LogLevel
}

// errorHint suggests a way out for errors the user can fix locally
func errorHint(err error) string {
	if config.IsConfigError(err) {
		return "Hint: check --format and the preferences file ('cgpa config path' prints its location).\n" +
			"      'cgpa config init --force' restores the defaults."
	}
	return ""
}
