package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cgpa/internal/version"
)

// AppName is shown in the header of every screen
const AppName = "CGPA CALCULATOR"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 48 // Narrowest layout we still render properly
	DefaultWidth     = 80 // Used before the first tea.WindowSizeMsg arrives
	DefaultHeight    = 24
	InputWidth       = 20
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	// Card title
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Row label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Row label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Button (unfocused)
	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Button (focused)
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(BackgroundColor).
				Background(PrimaryColor).
				Bold(true)

	// Controls that cannot be used right now
	DisabledStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Faint(true)

	// Result panel
	ResultBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 2).
			MarginTop(1)

	// Result panel holding the no-valid-values message
	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 2).
			MarginTop(1)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderButton renders a bracketed button, highlighted when focused
func RenderButton(text string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render("[" + text + "]")
	}
	return ButtonStyle.Render("[" + text + "]")
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render("v" + AppVersion())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps screen content in the full-screen panel:
// header on top, help footer at the bottom, rounded outer border.
//
// Zero dimensions (no tea.WindowSizeMsg seen yet) fall back to
// DefaultWidth x DefaultHeight.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	terminalWidth, terminalHeight = ClampSize(terminalWidth, terminalHeight)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 2)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// ClampSize replaces unknown or too-small terminal dimensions
func ClampSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	return width, height
}
