package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/cgpa/internal/config"
	"github.com/muurk/cgpa/internal/logging"
	"github.com/muurk/cgpa/internal/semester"
	"github.com/muurk/cgpa/internal/sheet"
	"github.com/muurk/cgpa/internal/ui"
)

// Calc command flags
var calcFlags calcOptions

type calcOptions struct {
	Format     string
	XLSX       string
	Sheet      string
	Column     string
	SkipHeader bool
	Styled     bool // Render text output as a box
}

// stdinIsTerminal is swapped out in tests
var stdinIsTerminal = func() bool {
	return ui.IsTerminal(os.Stdin)
}

func init() {
	calcCmd.Flags().StringVar(&calcFlags.Format, "format", "", "Output format (text, json, yaml)")
	calcCmd.Flags().StringVar(&calcFlags.XLSX, "xlsx", "", "Read SGPA values from a column of an Excel workbook (- for stdin)")
	calcCmd.Flags().StringVar(&calcFlags.Sheet, "sheet", "", "Sheet to read with --xlsx (default: first sheet)")
	calcCmd.Flags().StringVar(&calcFlags.Column, "column", sheet.DefaultColumn, "Column to read with --xlsx")
	calcCmd.Flags().BoolVar(&calcFlags.SkipHeader, "skip-header", false, "Ignore the first row with --xlsx")

	rootCmd.AddCommand(calcCmd)
}

// calcCmd computes a CGPA without the interactive form
var calcCmd = &cobra.Command{
	Use:   "calc [sgpa...]",
	Short: "Calculate a CGPA from the command line",
	Long: `Calculate a CGPA without opening the form.

Values are taken from the arguments, from an Excel workbook with --xlsx
("-" reads the workbook from standard input), or from standard input when it is not a terminal (separated by whitespace).
The same rules as the form apply: only numbers from 0 to 10 count.`,
	Example: `  # Two semesters
  cgpa calc 8 9

  # Negative values need -- so they are not read as flags
  cgpa calc -- 11 -1

  # Pipe values in
  printf '8.2\n7.9\n9.1\n' | cgpa calc

  # Column B of a workbook, skipping its header row, as JSON
  cgpa calc --xlsx grades.xlsx --column B --skip-header --format json

  # Workbook on standard input
  cgpa calc --xlsx - < grades.xlsx`,
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(logging.Options{Level: effectiveLogLevel(cfg)}); err != nil {
		return err
	}

	opts := calcFlags
	if opts.Format == "" {
		opts.Format = cfg.Preferences.OutputFormat
	}
	opts.Styled = ui.IsTerminal(os.Stdout)

	return calculate(opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), stdinIsTerminal())
}

// calculate gathers values, aggregates them and writes the result. A result
// with no valid values is returned as an error so the exit status reflects it.
func calculate(opts calcOptions, args []string, in io.Reader, out io.Writer, interactive bool) error {
	if err := config.ValidateOutputFormat(opts.Format); err != nil {
		return err
	}

	values, source, err := collectValues(opts, args, in, interactive)
	if err != nil {
		return err
	}
	logging.Debug("Collected SGPA values", zap.String("source", source), zap.Int("count", len(values)))

	form := semester.FromValues(values).Compute()
	result := form.Result()
	logging.LogComputation(source, result)

	if result.IsError() {
		if opts.Styled && isTextFormat(opts.Format) {
			fmt.Fprintln(out, ui.NewCGPAResult(result))
		}
		return errors.New(result.Text)
	}

	return writeResult(out, opts, result)
}

// collectValues picks the value source: arguments, then workbook, then stdin
func collectValues(opts calcOptions, args []string, in io.Reader, interactive bool) ([]string, string, error) {
	if len(args) > 0 {
		return args, "args", nil
	}

	if opts.XLSX != "" {
		sheetOpts := sheet.Options{
			Sheet:      opts.Sheet,
			Column:     opts.Column,
			SkipHeader: opts.SkipHeader,
		}

		var (
			values []string
			err    error
		)
		if opts.XLSX == "-" {
			if interactive {
				return nil, "", fmt.Errorf("--xlsx - expects a workbook piped to standard input")
			}
			values, err = sheet.ReadColumn(in, sheetOpts)
		} else {
			values, err = sheet.ReadColumnFile(opts.XLSX, sheetOpts)
		}
		if err != nil {
			return nil, "", err
		}
		return values, "xlsx", nil
	}

	if interactive {
		return nil, "", fmt.Errorf("no SGPA values given. Pass them as arguments, use --xlsx, or pipe them in")
	}

	var values []string
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		values = append(values, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return values, "stdin", nil
}

// report is the machine-readable form of a result
type report struct {
	CGPA     string  `json:"cgpa" yaml:"cgpa"`
	Value    float64 `json:"value" yaml:"value"`
	Valid    int     `json:"valid" yaml:"valid"`
	Excluded int     `json:"excluded" yaml:"excluded"`
}

func isTextFormat(format string) bool {
	return format == "" || format == config.FormatText
}

func writeResult(out io.Writer, opts calcOptions, result semester.Result) error {
	r := report{
		CGPA:     result.Text,
		Value:    result.Value,
		Valid:    result.Valid,
		Excluded: result.Excluded,
	}

	switch opts.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case config.FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = out.Write(data)
		return err

	default:
		if opts.Styled {
			_, err := fmt.Fprintln(out, ui.NewCGPAResult(result))
			return err
		}
		_, err := fmt.Fprintf(out, "Your CGPA: %s\n", result.Text)
		return err
	}
}
