// Package config provides user configuration management for the CGPA calculator.
//
// The configuration is a small YAML file holding display and logging
// preferences. It follows OS-specific conventions for storage location:
//   - Linux: $XDG_CONFIG_HOME/cgpa/config.yaml or $HOME/.config/cgpa/config.yaml
//   - macOS: $HOME/.config/cgpa/config.yaml
//   - Windows: %LOCALAPPDATA%\cgpa\config.yaml
//
// A missing file is not an error; Load returns the defaults. Command line
// flags override whatever the file says.
//
// # Example File
//
//	version: 1
//	preferences:
//	  alt_screen: true
//	  log_level: debug
//	  log_file: /tmp/cgpa.log
//	  output_format: json
//
// SGPA values typed into the form are never written to this file.
package config
