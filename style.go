package main

import "github.com/charmbracelet/lipgloss"

const (
	plotTextFGColor   = "#c0c0c0"
	selectedBGColor   = "#3a3a3a"
	selectedFGColor   = "#e0e0e0"
	missingValueColor = "#5f5f5f"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0e0e0"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	plotStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	cursorCityStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(selectedBGColor)).
			Foreground(lipgloss.Color(selectedFGColor))

	lassoBoxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c542"))

	yearLabelStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#f5f5f5")).
			Background(lipgloss.Color("#303030")).
			Padding(0, 1)

	barAllStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	barSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// categoryPalette colors categorical features and cluster labels. A category
// maps to the color at its first-appearance index, and the same index is
// used in the scatter and the bar chart so the two stay in sync.
var categoryPalette = []string{
	"1", "2", "3", "4", "5", "6",
	"9", "10", "11", "12", "13", "14",
	"94", "130", "23", "58",
}

// rampPalette colors numeric features from low to high.
var rampPalette = []string{
	"17", "18", "19", "20", "21",
	"27", "33", "39", "45", "51",
	"50", "49", "48", "47", "46",
	"82", "118", "154", "190", "226",
	"220", "214", "208", "202", "196",
}

func categoryColor(idx int) lipgloss.Color {
	if idx < 0 {
		return lipgloss.Color(missingValueColor)
	}
	return lipgloss.Color(categoryPalette[idx%len(categoryPalette)])
}

// rampColor maps a fraction in [0, 1] onto the ramp. NaN callers should pass
// a negative fraction to get the missing-value gray.
func rampColor(frac float64) lipgloss.Color {
	if frac < 0 {
		return lipgloss.Color(missingValueColor)
	}
	if frac > 1 {
		frac = 1
	}
	idx := int(frac * float64(len(rampPalette)-1))
	return lipgloss.Color(rampPalette[idx])
}
