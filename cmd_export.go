package main

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/marketscope/clipboard"
	"github.com/andareed/marketscope/dialogs"
	"github.com/andareed/marketscope/logging"
)

func (m *model) defaultExportName() string {
	if m.currentScreen == screenExplorer {
		return fmt.Sprintf("distribution-%s.csv", slugify(m.sess.SubFeature))
	}
	return fmt.Sprintf("cities-%d.csv", m.sess.Year)
}

func (m *model) defaultSessionName() string {
	return "marketscope-session.json"
}

func slugify(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}

// exportCurrent writes the active view's table off the update loop; the
// outcome comes back as an export message and surfaces as a notice.
func (m *model) exportCurrent(path string) tea.Cmd {
	return func() tea.Msg {
		if err := ExportView(m, path); err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Path: path}
	}
}

func (m *model) writeSession() tea.Cmd {
	path := m.defaultSessionName()
	if err := SaveSession(m, path); err != nil {
		logging.Warnf("session save failed: %v", err)
		return m.startNotice(fmt.Sprintf("session save failed: %v", err), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("session saved to %s", path), "success", noticeDuration)
}

// copySelection puts the lassoed symbols on the clipboard, one per line.
func (m *model) copySelection() tea.Cmd {
	if len(m.sess.Selected) == 0 {
		return m.startNotice("nothing selected", "warn", noticeDuration)
	}
	col, err := m.base.Column("Symbol")
	if err != nil {
		return m.startNotice(err.Error(), "error", noticeDuration)
	}

	rows := make([]int, 0, len(m.sess.Selected))
	for i := range m.sess.Selected {
		rows = append(rows, i)
	}
	sort.Ints(rows)

	var symbols []string
	for _, i := range rows {
		if s := col.Strs[i]; s != "" {
			symbols = append(symbols, s)
		}
	}
	if err := clipboard.CopyWithFallback(strings.Join(symbols, "\n")); err != nil {
		return m.startNotice(fmt.Sprintf("copy failed: %v", err), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("copied %d symbols", len(symbols)), "success", noticeDuration)
}
