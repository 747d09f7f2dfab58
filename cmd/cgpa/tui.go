package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/cgpa/internal/logging"
	"github.com/muurk/cgpa/internal/tui"
)

// Form command flags
var (
	altScreen bool
	logFile   string
)

func init() {
	tuiCmd.Flags().BoolVar(&altScreen, "alt-screen", true, "Use the terminal's alternate screen")
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the form is open")

	// Same flags when launched as the default command
	rootCmd.Flags().AddFlagSet(tuiCmd.Flags())

	rootCmd.AddCommand(tuiCmd)
}

// tuiCmd launches the interactive form
var tuiCmd = &cobra.Command{
	Use:   "tui [sgpa...]",
	Short: "Launch the interactive CGPA form",
	Long: `Launch the interactive form.

One row per semester. Type an SGPA into each row, add or remove rows as
needed, then press Enter to calculate. The form starts with one empty row,
or with one row per value given as an argument. Nothing is calculated until
you ask, and nothing you type is saved when it closes.`,
	Example: `  # Launch the form (tui is the default command)
  cgpa
  cgpa tui

  # Start with three semesters filled in
  cgpa tui 8.2 7.9 9.1

  # Keep the form in the normal scrollback
  cgpa tui --alt-screen=false

  # Debug logging to a file
  cgpa tui --log-level debug --log-file /tmp/cgpa.log`,
	Args: cobra.ArbitraryArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("alt-screen") {
		altScreen = cfg.Preferences.AltScreen
	}
	output := logFile
	if output == "" {
		output = cfg.Preferences.LogFile
	}

	// The form owns the terminal; without a file, stay silent
	if output != "" {
		if err := logging.Initialize(logging.Options{Level: effectiveLogLevel(cfg), Output: output}); err != nil {
			return err
		}
	}
	logging.Info("Starting form", zap.Bool("alt_screen", altScreen), zap.Int("prefilled", len(args)))

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newFormModel(args), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	return nil
}

// newFormModel returns the form, prefilled when values were given
func newFormModel(values []string) tui.CalculatorModel {
	if len(values) == 0 {
		return tui.NewCalculatorModel()
	}
	return tui.NewCalculatorModelWithValues(values)
}
