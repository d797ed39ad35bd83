package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/marketscope/dataset"
	"github.com/andareed/marketscope/derive"
	"github.com/andareed/marketscope/dialogs"
	"github.com/andareed/marketscope/dispatch"
	"github.com/andareed/marketscope/logging"
	"github.com/andareed/marketscope/registry"
)

type screen int

const (
	screenExplorer screen = iota
	screenMap
)

type mode int

const (
	modeView mode = iota
	modeLasso
	modeCommand
)

// clusterFeature is the synthetic categorical feature produced by the
// embedding; it is always offered as a color option.
const clusterFeature = "Cluster"

// Layout slots. Statically known; handlers replace, the layout never grows.
const (
	slotScatter registry.Slot = "scatter"
	slotSubplot registry.Slot = "subplot"
	slotMap     registry.Slot = "map"
	slotDrill   registry.Slot = "drill"
)

// Event names routed through the dispatcher.
const (
	evColorFeature = "feature/color"
	evSubFeature   = "feature/sub"
	evLasso        = "scatter/lasso"
	evTap          = "map/tap"
	evThreshold    = "map/threshold"
	evPeriod       = "anim/period"
)

// tickMsg carries the animator generation so stale timers can be dropped.
type tickMsg struct{ gen int }

type model struct {
	base *dataset.Table
	emb  *derive.Embedding
	cfg  Config

	sess  *sessionState
	disp  *dispatch.Dispatcher
	anim  *dispatch.Animator
	views *registry.Registry

	colorOptions []string
	subOptions   []string

	currentScreen screen
	currentMode   mode
	ci            CommandInput
	lasso         lassoBox

	cityCursor int
	cities     []string

	terminalWidth  int
	terminalHeight int
	ready          bool

	noticeMsg  string
	noticeType string
	noticeSeq  int

	activeDialog dialogs.Dialog
	InitialPath  string
}

func newModel(base *dataset.Table, cfg Config) (*model, error) {
	emb, err := derive.Embed(base, cfg.Clusters, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}

	m := &model{
		base:  base,
		emb:   emb,
		cfg:   cfg,
		sess:  newSessionState(cfg, base),
		disp:  dispatch.NewDispatcher(),
		anim:  dispatch.NewAnimator(cfg.TickInterval.Duration),
		views: registry.New(),
	}
	m.colorOptions, m.subOptions = featureOptions(base)
	m.subscribeHandlers()
	return m, nil
}

// featureOptions picks the selectable features: the cluster label plus every
// non-coordinate column, for both widgets.
func featureOptions(t *dataset.Table) (color, sub []string) {
	color = []string{clusterFeature}
	for _, name := range t.ColumnNames() {
		switch name {
		case "lng", "lat", "x", "y":
			continue
		}
		color = append(color, name)
		sub = append(sub, name)
	}
	return color, sub
}

// subscribeHandlers wires every UI event to its state-then-rebuild-then-
// replace sequence. All session mutation funnels through these.
func (m *model) subscribeHandlers() {
	m.disp.Subscribe(evColorFeature, func(p any) {
		m.sess.ColorFeature = p.(string)
		m.rebuildScatter()
	})
	m.disp.Subscribe(evSubFeature, func(p any) {
		m.sess.SubFeature = p.(string)
		m.rebuildSubplot()
	})
	m.disp.Subscribe(evLasso, func(p any) {
		m.sess.SetSelected(p.(map[int]struct{}))
		m.rebuildScatter()
		m.rebuildSubplot()
	})
	m.disp.Subscribe(evTap, func(p any) {
		m.sess.City = p.(string)
		m.rebuildDrill()
	})
	m.disp.Subscribe(evThreshold, func(p any) {
		m.sess.SetCapLower(p.(float64), m.base)
		m.rebuildMap()
		m.rebuildDrill()
	})
	m.disp.Subscribe(evPeriod, func(any) {
		m.sess.AdvanceYear()
		m.rebuildMap()
		m.rebuildDrill()
	})
}

func (m *model) Init() tea.Cmd {
	m.rebuildAll()
	logging.Infof("marketscope: Initialised with %d rows", m.base.NumRows())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.rebuildAll()
		return m, nil

	case tickMsg:
		if !m.anim.ValidTick(msg.gen) {
			logging.Debugf("dropping stale tick gen=%d", msg.gen)
			return m, nil
		}
		m.disp.Dispatch(evPeriod, nil)
		return m, m.armTick(msg.gen)

	case clearNoticeMsg:
		if msg.id == m.noticeSeq {
			m.noticeMsg = ""
			m.noticeType = ""
		}
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportCurrent(msg.Path)

	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case dialogs.ExportOKMsg:
		logging.Infof("exported view to %s", msg.Path)
		return m, m.startNotice(fmt.Sprintf("exported %s", msg.Path), "success", noticeDuration)

	case dialogs.ExportErrorMsg:
		logging.Warnf("export failed: %v", msg.Err)
		return m, m.startNotice(fmt.Sprintf("export failed: %v", msg.Err), "error", noticeDuration)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	switch m.currentMode {
	case modeLasso:
		return m.handleLassoKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil
	case "tab":
		if m.currentScreen == screenExplorer {
			m.currentScreen = screenMap
		} else {
			m.currentScreen = screenExplorer
		}
		return m, nil
	case "e":
		m.activeDialog = dialogs.NewExportDialog(m.defaultExportName(), "")
		return m, m.activeDialog.Focus()
	case "w":
		return m, m.writeSession()
	case ":":
		m.enterCommandMode(CmdYear)
		return m, nil
	case "t":
		m.enterCommandMode(CmdThreshold)
		return m, nil
	case "/":
		m.enterCommandMode(CmdCity)
		return m, nil
	case "ctrl+c":
		return m, m.copySelection()
	}

	if m.currentScreen == screenExplorer {
		return m.handleExplorerKey(msg)
	}
	return m.handleMapKey(msg)
}

func (m *model) handleExplorerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.disp.Dispatch(evColorFeature, cycleOption(m.colorOptions, m.sess.ColorFeature, +1))
	case "C":
		m.disp.Dispatch(evColorFeature, cycleOption(m.colorOptions, m.sess.ColorFeature, -1))
	case "s":
		m.disp.Dispatch(evSubFeature, cycleOption(m.subOptions, m.sess.SubFeature, +1))
	case "S":
		m.disp.Dispatch(evSubFeature, cycleOption(m.subOptions, m.sess.SubFeature, -1))
	case "l":
		m.enterLassoMode()
	case "x":
		m.disp.Dispatch(evLasso, map[int]struct{}{})
		return m, m.startNotice("Selection cleared", "info", noticeDuration)
	}
	return m, nil
}

func (m *model) handleMapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCityCursor(+1)
	case "k", "up":
		m.moveCityCursor(-1)
	case "enter":
		if city, ok := m.cursorCity(); ok {
			m.disp.Dispatch(evTap, city)
		}
	case "left", "h":
		m.disp.Dispatch(evThreshold, m.sess.CapLower-m.sliderStep())
	case "right", "l":
		m.disp.Dispatch(evThreshold, m.sess.CapLower+m.sliderStep())
	case " ":
		return m, m.togglePlay()
	}
	return m, nil
}

func (m *model) togglePlay() tea.Cmd {
	if m.anim.Running() {
		m.anim.Stop()
		m.sess.Playing = false
		logging.Infof("animation stopped at year %d", m.sess.Year)
		return nil
	}
	gen, ok := m.anim.Start()
	m.sess.Playing = true
	if !ok {
		return nil
	}
	logging.Infof("animation started, gen=%d", gen)
	return m.armTick(gen)
}

func (m *model) armTick(gen int) tea.Cmd {
	return tea.Tick(m.anim.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *model) moveCityCursor(delta int) {
	if len(m.cities) == 0 {
		return
	}
	m.cityCursor += delta
	if m.cityCursor < 0 {
		m.cityCursor = 0
	}
	if m.cityCursor >= len(m.cities) {
		m.cityCursor = len(m.cities) - 1
	}
	m.rebuildMap()
}

func (m *model) cursorCity() (string, bool) {
	if m.cityCursor < 0 || m.cityCursor >= len(m.cities) {
		return "", false
	}
	return m.cities[m.cityCursor], true
}

func (m *model) sliderStep() float64 {
	col, err := m.base.Column(derive.YearColumn("Market Cap", m.sess.Year))
	if err != nil {
		logging.Warnf("sliderStep: %v", err)
		return 1
	}
	min, max := col.Bounds()
	if max <= min {
		return 1
	}
	return (max - min) / float64(m.cfg.SliderSteps)
}

func cycleOption(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}
