// Package tui implements the terminal form for the CGPA calculator.
//
// Built on Bubble Tea, the form follows the Model-Update-View pattern. The
// authoritative state is a semester.Form snapshot; every key press that
// changes it (add, remove, edit, calculate) replaces the snapshot, and View
// renders whatever snapshot the model holds.
//
// # Layout
//
//	Semester 1 SGPA
//	→ 8.5                  [−]
//
//	Semester 2 SGPA
//	  Enter SGPA (0-10)    [−]
//
//	[+ Add Semester]   [= Calculate CGPA]
//
//	╭──────────────────╮
//	│  Your CGPA: 8.50 │
//	╰──────────────────╯
//
// The result panel appears only after the first calculation. The remove
// control is drawn faint, and ctrl+d ignored, while only one row is left.
//
// # Key Bindings
//
//   - ↑/↓, tab/shift+tab: move between rows and buttons
//   - enter: calculate (or add, when the Add Semester button is focused)
//   - ctrl+n: add a row, ctrl+d: remove the focused row
//   - f1: toggle full help, esc/ctrl+c: quit
//
// Inputs accept any text. Values that are not numbers in [0, 10] are left
// out of the average when it is calculated, without any per-row warning.
package tui
