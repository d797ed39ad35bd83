package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Command int

const (
	CmdNone Command = iota
	CmdYear
	CmdCity
	CmdThreshold
)

type CommandInput struct {
	cmd Command
	buf string
}

func (m *model) enterCommandMode(cmd Command) {
	m.currentMode = modeCommand
	m.ci = CommandInput{cmd: cmd}
}

func (m *model) exitCommandMode() {
	m.currentMode = modeView
	m.ci = CommandInput{}
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitCommandMode()
		return m, nil
	case "enter":
		cmd := m.applyCommand()
		m.exitCommandMode()
		return m, cmd
	case "backspace":
		if len(m.ci.buf) > 0 {
			m.ci.buf = m.ci.buf[:len(m.ci.buf)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.ci.buf += string(msg.Runes)
	}
	return m, nil
}

func (m *model) applyCommand() tea.Cmd {
	input := strings.TrimSpace(m.ci.buf)
	if input == "" {
		return nil
	}

	switch m.ci.cmd {
	case CmdYear:
		year, err := strconv.Atoi(input)
		if err != nil {
			return m.startNotice(fmt.Sprintf("not a year: %q", input), "error", noticeDuration)
		}
		m.sess.SetYear(year)
		m.rebuildMap()
		m.rebuildDrill()
		return m.startNotice(fmt.Sprintf("Year %d", m.sess.Year), "info", noticeDuration)

	case CmdCity:
		idx := m.findCity(input)
		if idx < 0 {
			return m.startNotice(fmt.Sprintf("no city matching %q", input), "warn", noticeDuration)
		}
		m.cityCursor = idx
		m.disp.Dispatch(evTap, m.cities[idx])
		m.rebuildMap()
		return nil

	case CmdThreshold:
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return m.startNotice(fmt.Sprintf("not a number: %q", input), "error", noticeDuration)
		}
		m.disp.Dispatch(evThreshold, v)
		return m.startNotice(fmt.Sprintf("Lower bound %.4g", m.sess.CapLower), "info", noticeDuration)
	}
	return nil
}

// findCity does a case-insensitive prefix match first, then substring.
func (m *model) findCity(query string) int {
	q := strings.ToLower(query)
	for i, c := range m.cities {
		if strings.HasPrefix(strings.ToLower(c), q) {
			return i
		}
	}
	for i, c := range m.cities {
		if strings.Contains(strings.ToLower(c), q) {
			return i
		}
	}
	return -1
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdYear:
		return "[YEAR]"
	case CmdCity:
		return "[CITY]"
	case CmdThreshold:
		return "[BOUND]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdYear:
		return "year: "
	case CmdCity:
		return "city: "
	case CmdThreshold:
		return "lower bound: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	return "enter: apply   esc: cancel"
}

func (m *model) idleCommandHintsLine() string {
	if m.currentScreen == screenExplorer {
		return "c color   s subplot   l lasso   x clear   tab map   ? help"
	}
	return "j/k city   enter drill   h/l bound   space play   : year   tab explorer"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ci.cmd)
	prompt := m.commandPrompt(m.ci.cmd)
	return badge + " " + prompt + m.ci.buf
}
