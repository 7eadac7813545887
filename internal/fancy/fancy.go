// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Common colors for different types of elements
var (
	ColorBlue     = lipgloss.Color("39")  // Blue
	ColorMagenta  = lipgloss.Color("201") // Bright Magenta
	ColorOrange   = lipgloss.Color("208") // Orange
	ColorGreen    = lipgloss.Color("82")  // Green
	ColorYellow   = lipgloss.Color("228") // Yellow
	ColorCyan     = lipgloss.Color("45")  // Cyan
	ColorRed      = lipgloss.Color("196") // Red
	ColorGray     = lipgloss.Color("250") // Light gray
	ColorWhite    = lipgloss.Color("15")  // White
	ColorDarkGray = lipgloss.Color("240") // Dark gray for branches
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	TypeStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	ActorStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ScriptStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// TypeText styles a registered type name
func TypeText(text string) string {
	return TypeStyle.Render(text)
}

// ActorText styles an actor declaration
func ActorText(text string) string {
	return ActorStyle.Render(text)
}

// ScriptText styles a script reference
func ScriptText(text string) string {
	return ScriptStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return ComponentStyle.Render(text)
}

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}
