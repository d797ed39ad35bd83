package dialogs

import "github.com/charmbracelet/lipgloss"

func center(s string, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		s,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
	)
}

// Overlay centers a dialog over the given terminal dimensions, dimming the
// surrounding whitespace. Hidden or absent dialogs render as nothing.
func Overlay(d Dialog, width, height int) string {
	if d == nil || !d.IsVisible() {
		return ""
	}
	return center(d.View(), width, height)
}
