package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/marketscope/dialogs"
	"github.com/andareed/marketscope/logging"
)

// wrapMessage keeps long error text inside a plot slot instead of blowing out
// the horizontal layout.
func wrapMessage(msg string) string {
	return dimStyle.Render(wordwrap.String(msg, 48))
}

func (m *model) rebuildAll() {
	logging.Debug("rebuilding all view slots")
	m.rebuildScatter()
	m.rebuildSubplot()
	m.rebuildMap()
	m.rebuildDrill()
}

func (m *model) headerView() string {
	explorer := "Explorer"
	mapTab := "Map"
	if m.currentScreen == screenExplorer {
		explorer = titleStyle.Render("[" + explorer + "]")
		mapTab = dimStyle.Render(" " + mapTab + " ")
	} else {
		explorer = dimStyle.Render(" " + explorer + " ")
		mapTab = titleStyle.Render("[" + mapTab + "]")
	}
	return titleStyle.Render("marketscope") + "  " + explorer + " " + mapTab
}

// footerView renders the 2-line footer using local (function-scoped) styles/state.
// width is the terminal width (e.g. m.terminalWidth from tea.WindowSizeMsg).
func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	if m.currentMode == modeCommand {
		footerMode = m.ci.cmd
		modeInput = m.activeCommandLine()
	}
	if m.currentMode == modeLasso {
		modeInput = "lasso: hjkl resize  HJKL move  enter apply  esc cancel"
	}

	st := footerState{
		Mode:       footerMode,
		ModeInput:  modeInput,
		FileName:   filepath.Base(m.InitialPath),
		YearLabel:  fmt.Sprintf("%d", m.sess.Year),
		BoundLabel: fmt.Sprintf("%.4g", m.sess.CapLower),
		Playing:    m.sess.Playing,
		Row:        m.cityCursor + 1,
		TotalRows:  len(m.cities),
		Legend:     "(" + m.idleCommandHintsLine() + ")",
	}
	if m.currentScreen == screenExplorer {
		st.Row = len(m.sess.Selected)
		st.TotalRows = m.base.NumRows()
	}
	if m.noticeMsg != "" {
		st.StatusMessage = noticeText(m.noticeMsg, m.noticeType)
	} else if m.currentMode == modeCommand {
		st.StatusMessage = m.commandHintsLine(m.ci.cmd)
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d screen=%d mode=%d gen-valid=%v",
			m.terminalWidth, m.terminalHeight, m.currentScreen, m.currentMode, m.anim.Running())
		st.Legend = st.Legend + " |" + debug
	}

	return renderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.activeDialog, m.terminalWidth, m.terminalHeight)
	}

	var body string
	switch m.currentScreen {
	case screenExplorer:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.views.Get(slotScatter).View(),
			"  ",
			m.views.Get(slotSubplot).View(),
		)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.views.Get(slotMap).View(),
			"  ",
			m.views.Get(slotDrill).View(),
		)
	}

	parts := []string{
		m.headerView(),
		body,
		m.footerView(lipgloss.Width(body)),
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
