package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cgpa/internal/semester"
)

// Detail is one labelled line in a result box
type Detail struct {
	Key   string
	Value string
}

// Result is a bordered box describing one CGPA computation
type Result struct {
	Title   string
	Failed  bool
	Details []Detail
	Hints   []string // Shown under a failed result
	Width   int
}

// NewCGPAResult builds the box for a computed result
func NewCGPAResult(r semester.Result) *Result {
	if r.IsError() {
		return &Result{
			Title:  r.Text,
			Failed: true,
			Details: []Detail{
				{Key: "Excluded", Value: strconv.Itoa(r.Excluded)},
			},
			Hints: []string{
				"Each SGPA must be a number from 0 to 10",
				"Use a dot for decimals, e.g. 8.25",
			},
			Width: GetTerminalWidth(),
		}
	}

	return &Result{
		Title: "Your CGPA: " + r.Text,
		Details: []Detail{
			{Key: "Semesters", Value: strconv.Itoa(r.Valid)},
			{Key: "Excluded", Value: strconv.Itoa(r.Excluded)},
		},
		Width: GetTerminalWidth(),
	}
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	titleStyle, marker, border := SuccessTitleStyle, SuccessMarker, SuccessColor
	if r.Failed {
		titleStyle, marker, border = ErrorTitleStyle, FailureMarker, ErrorColor
	}

	lines := []string{
		"",
		titleStyle.Render(fmt.Sprintf(" %s  %s", marker, r.Title)),
		"",
	}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(" "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}

	if r.Failed && len(r.Hints) > 0 {
		lines = append(lines, "")
		for _, hint := range r.Hints {
			lines = append(lines, HintStyle.Render(" • "+hint))
		}
	}
	lines = append(lines, "")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
