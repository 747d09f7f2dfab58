// Package ui renders styled boxes for the non-interactive commands.
//
// The interactive form lives in package tui. This package only covers the
// output of 'cgpa calc' when standard output is a terminal:
//
//	╔══════════════════════════════════╗
//	║                                  ║
//	║  ✓  Your CGPA: 8.50              ║
//	║                                  ║
//	║  Semesters:  2                   ║
//	║  Excluded:   0                   ║
//	║                                  ║
//	╚══════════════════════════════════╝
//
// When output is piped, the calc command prints plain text instead.
package ui
