package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/marketscope/dataset"
	"github.com/andareed/marketscope/derive"
	"github.com/andareed/marketscope/logging"
	"github.com/andareed/marketscope/registry"
)

// maskedForYear blanks every company whose market cap for the current year
// sits below the lower bound: its symbol, cap, and employees all go missing
// so the rollup and drill-down exclude it without dropping the row.
func (m *model) maskedForYear() *dataset.Table {
	metricCol := derive.YearColumn("Market Cap", m.sess.Year)
	maskCols := []string{
		"Symbol",
		metricCol,
		derive.YearColumn("Employees", m.sess.Year),
	}
	masked, err := derive.MaskBelow(m.base, metricCol, m.sess.CapLower, maskCols)
	if err != nil {
		logging.Warnf("maskedForYear: %v", err)
		return m.base
	}
	return masked
}

// mapSize is the cell grid for the city map.
func (m *model) mapSize() (w, h int) {
	if !m.ready {
		return 56, 14
	}
	w = clamp(m.terminalWidth/2-6, 24, 100)
	h = clamp(m.terminalHeight-16, 8, 22)
	return w, h
}

func (m *model) rebuildMap() {
	groups, err := derive.CityRollup(m.maskedForYear(), m.sess.Year)
	if err != nil {
		logging.Warnf("rebuildMap: %v", err)
		m.views.Replace(slotMap, registry.Rendered(wrapMessage(err.Error())))
		m.cities = nil
		return
	}

	m.cities = make([]string, len(groups))
	for i, g := range groups {
		m.cities[i] = g.City
	}
	if m.cityCursor >= len(m.cities) {
		m.cityCursor = max(0, len(m.cities)-1)
	}

	w, h := m.mapSize()
	out := m.renderMapGrid(groups, w, h) + "\n" +
		m.renderCityList(groups) + "\n" +
		m.renderSlider(w)
	m.views.Replace(slotMap, registry.Rendered(out))
}

// renderMapGrid places each city circle on a grid by its Mercator
// coordinates. Glyph size tracks the log-scaled employee count, color tracks
// total market cap.
func (m *model) renderMapGrid(groups []derive.CityGroup, w, h int) string {
	grid := make([][]string, h)
	for y := range grid {
		row := make([]string, w)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}

	minX, maxX := groupBounds(groups, func(g derive.CityGroup) float64 { return g.X })
	minY, maxY := groupBounds(groups, func(g derive.CityGroup) float64 { return g.Y })
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	_, maxCap := groupBounds(groups, func(g derive.CityGroup) float64 { return g.MarketCap })
	if maxCap == 0 {
		maxCap = 1
	}

	for i, g := range groups {
		cx := clamp(int((g.X-minX)/spanX*float64(w-1)), 0, w-1)
		cy := clamp(h-1-int((g.Y-minY)/spanY*float64(h-1)), 0, h-1)
		style := lipgloss.NewStyle().Foreground(rampColor(g.MarketCap / maxCap))
		if i == m.cityCursor {
			style = cursorCityStyle
		}
		grid[cy][cx] = style.Render(circleGlyph(g.CircleSize))
	}

	var b strings.Builder
	for y := range grid {
		b.WriteString(strings.Join(grid[y], ""))
		if y < h-1 {
			b.WriteByte('\n')
		}
	}

	title := titleStyle.Render("US Cities · total market cap") + "  " +
		yearLabelStyle.Render(fmt.Sprintf("%d", m.sess.Year))
	if m.sess.Playing {
		title += " " + dimStyle.Render("▶")
	}
	return title + "\n" + plotStyle.Render(b.String())
}

// circleGlyph buckets the log-scaled size into four runes.
func circleGlyph(size float64) string {
	switch {
	case size <= 0:
		return "·"
	case size < 25:
		return "∘"
	case size < 40:
		return "o"
	case size < 50:
		return "O"
	default:
		return "@"
	}
}

// renderCityList shows a few cities around the cursor with their aggregates.
func (m *model) renderCityList(groups []derive.CityGroup) string {
	const window = 5
	start := max(0, m.cityCursor-window/2)
	end := min(len(groups), start+window)

	var lines []string
	for i := start; i < end; i++ {
		g := groups[i]
		line := fmt.Sprintf("%-18s cap %10.3g  emp %8.0f  companies %d",
			truncatePlain(g.City, 18), g.MarketCap, g.Employees, g.Companies)
		if i == m.cityCursor {
			line = cursorCityStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("  no cities above the lower bound"))
	}
	return strings.Join(lines, "\n")
}

// renderSlider draws the market-cap lower bound as a notched track.
func (m *model) renderSlider(w int) string {
	min, max := m.sess.capBounds(m.base)
	span := max - min
	if span == 0 {
		span = 1
	}
	frac := (m.sess.CapLower - min) / span
	frac = clampFloat(frac, 0, 1)

	track := w - 2
	if track < 10 {
		track = 10
	}
	pos := int(frac * float64(track-1))
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < track; i++ {
		switch {
		case i == pos:
			b.WriteString("┃")
		case i < pos:
			b.WriteString("═")
		default:
			b.WriteString("─")
		}
	}
	b.WriteByte(']')
	return b.String() + dimStyle.Render(fmt.Sprintf(" cap ≥ %.4g", m.sess.CapLower))
}

func groupBounds(groups []derive.CityGroup, f func(derive.CityGroup) float64) (min, max float64) {
	if len(groups) == 0 {
		return 0, 0
	}
	min, max = f(groups[0]), f(groups[0])
	for _, g := range groups[1:] {
		v := f(g)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
