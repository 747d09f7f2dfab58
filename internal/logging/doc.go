// Package logging provides structured logging for the CGPA calculator.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default: nothing is written unless a level is supplied by
// flag, config file, or the CGPA_LOG_LEVEL environment variable.
//
// # Output
//
// The interactive form owns the terminal, so when it runs the log should go
// to a file:
//
//	if err := logging.Initialize(logging.Options{
//	    Level:  "debug",
//	    Output: "/tmp/cgpa.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The non-interactive calc command writes to stderr so stdout stays clean
// for the result.
//
// # Domain Helpers
//
//	logging.LogEntryEvent("add", id, form.Len())
//	logging.LogComputation("tui", form.Result())
//
// Raw SGPA text is never logged, only counts and the computed value.
package logging
