package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/marketscope/dataset"
	"github.com/andareed/marketscope/logging"
	"github.com/andareed/marketscope/registry"
)

// lassoBox is a rectangle in scatter cell coordinates. The anchor corner is
// (x0,y0); the moving corner is (x1,y1) and may sit on any side of the anchor.
type lassoBox struct {
	x0, y0, x1, y1 int
}

func (b lassoBox) contains(x, y int) bool {
	x0, x1 := ordered(b.x0, b.x1)
	y0, y1 := ordered(b.y0, b.y1)
	return x >= x0 && x <= x1 && y >= y0 && y <= y1
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (m *model) enterLassoMode() {
	w, h := m.scatterSize()
	m.currentMode = modeLasso
	m.lasso = lassoBox{x0: w / 4, y0: h / 4, x1: w - w/4, y1: h - h/4}
	m.rebuildScatter()
}

func (m *model) exitLassoMode() {
	m.currentMode = modeView
	m.rebuildScatter()
}

func (m *model) handleLassoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, h := m.scatterSize()
	switch msg.String() {
	case "esc":
		m.exitLassoMode()
		return m, nil
	case "enter":
		rows := m.lassoRows(w, h)
		m.currentMode = modeView
		m.disp.Dispatch(evLasso, rows)
		return m, m.startNotice(fmt.Sprintf("%d points selected", len(rows)), "info", noticeDuration)
	case "h", "left":
		m.lasso.x1--
	case "l", "right":
		m.lasso.x1++
	case "k", "up":
		m.lasso.y1--
	case "j", "down":
		m.lasso.y1++
	case "H":
		m.lasso.x0--
		m.lasso.x1--
	case "L":
		m.lasso.x0++
		m.lasso.x1++
	case "K":
		m.lasso.y0--
		m.lasso.y1--
	case "J":
		m.lasso.y0++
		m.lasso.y1++
	}
	m.lasso.x0 = clamp(m.lasso.x0, 0, w-1)
	m.lasso.x1 = clamp(m.lasso.x1, 0, w-1)
	m.lasso.y0 = clamp(m.lasso.y0, 0, h-1)
	m.lasso.y1 = clamp(m.lasso.y1, 0, h-1)
	m.rebuildScatter()
	return m, nil
}

// lassoRows maps every embedded point to its cell and collects those inside
// the box.
func (m *model) lassoRows(w, h int) map[int]struct{} {
	rows := make(map[int]struct{})
	project := m.scatterProjection(w, h)
	for i := range m.emb.X {
		cx, cy := project(i)
		if m.lasso.contains(cx, cy) {
			rows[i] = struct{}{}
		}
	}
	return rows
}

// scatterSize is the cell grid for the scatter plot; one point per cell.
func (m *model) scatterSize() (w, h int) {
	if !m.ready {
		return 56, 18
	}
	w = clamp(m.terminalWidth/2-6, 24, 100)
	h = clamp(m.terminalHeight-10, 10, 28)
	return w, h
}

// scatterProjection maps a row index to a grid cell, flipping y so larger
// values draw higher.
func (m *model) scatterProjection(w, h int) func(i int) (int, int) {
	minX, maxX := sliceBounds(m.emb.X)
	minY, maxY := sliceBounds(m.emb.Y)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	return func(i int) (int, int) {
		cx := int((m.emb.X[i] - minX) / spanX * float64(w-1))
		cy := h - 1 - int((m.emb.Y[i]-minY)/spanY*float64(h-1))
		return clamp(cx, 0, w-1), clamp(cy, 0, h-1)
	}
}

func sliceBounds(xs []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range xs {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > max {
		return 0, 0
	}
	return min, max
}

func (m *model) rebuildScatter() {
	w, h := m.scatterSize()
	grid := make([][]string, h)
	for y := range grid {
		row := make([]string, w)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}

	colorOf := m.pointColorFn()
	project := m.scatterProjection(w, h)
	for i := range m.emb.X {
		cx, cy := project(i)
		glyph := "•"
		style := lipgloss.NewStyle().Foreground(colorOf(i))
		if _, sel := m.sess.Selected[i]; sel {
			glyph = "●"
			style = style.Bold(true)
		}
		grid[cy][cx] = style.Render(glyph)
	}

	if m.currentMode == modeLasso {
		drawLasso(grid, m.lasso, w, h)
	}

	var b strings.Builder
	for y := range grid {
		b.WriteString(strings.Join(grid[y], ""))
		if y < h-1 {
			b.WriteByte('\n')
		}
	}

	title := fmt.Sprintf("Explorer · color: %s", m.sess.ColorFeature)
	if n := len(m.sess.Selected); n > 0 {
		title += fmt.Sprintf(" · %d selected", n)
	}
	out := titleStyle.Render(title) + "\n" + plotStyle.Render(b.String())
	m.views.Replace(slotScatter, registry.Rendered(out))
}

// drawLasso overlays the box outline on top of whatever points it covers.
func drawLasso(grid [][]string, box lassoBox, w, h int) {
	x0, x1 := ordered(box.x0, box.x1)
	y0, y1 := ordered(box.y0, box.y1)
	for x := x0; x <= x1; x++ {
		grid[y0][x] = lassoBoxStyle.Render("─")
		grid[y1][x] = lassoBoxStyle.Render("─")
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = lassoBoxStyle.Render("│")
		grid[y][x1] = lassoBoxStyle.Render("│")
	}
	grid[y0][x0] = lassoBoxStyle.Render("┌")
	grid[y0][x1] = lassoBoxStyle.Render("┐")
	grid[y1][x0] = lassoBoxStyle.Render("└")
	grid[y1][x1] = lassoBoxStyle.Render("┘")
}

// pointColorFn binds the current color feature to a per-row color. Cluster
// labels and categorical values share the category palette; numeric features
// use the ramp.
func (m *model) pointColorFn() func(i int) lipgloss.Color {
	if m.sess.ColorFeature == clusterFeature {
		return func(i int) lipgloss.Color {
			return categoryColor(m.emb.Cluster[i])
		}
	}

	col, err := m.base.Column(m.sess.ColorFeature)
	if err != nil {
		logging.Warnf("pointColorFn: %v", err)
		return func(int) lipgloss.Color { return categoryColor(-1) }
	}

	if col.Kind == dataset.Categorical {
		// categories map to palette slots by first-appearance order, the
		// same order the bar chart uses
		index := make(map[string]int)
		for _, v := range col.Strs {
			if v == "" {
				continue
			}
			if _, ok := index[v]; !ok {
				index[v] = len(index)
			}
		}
		return func(i int) lipgloss.Color {
			v := col.Strs[i]
			if v == "" {
				return categoryColor(-1)
			}
			return categoryColor(index[v])
		}
	}

	min, max := col.Bounds()
	span := max - min
	if span == 0 {
		span = 1
	}
	return func(i int) lipgloss.Color {
		v := col.Nums[i]
		if math.IsNaN(v) {
			return rampColor(-1)
		}
		return rampColor((v - min) / span)
	}
}
