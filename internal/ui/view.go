package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"

	"pomoglass/internal/engine"
	"pomoglass/internal/history"
)

type clockMsg time.Time
type pulseMsg time.Time

type allTimeMsg struct {
	focusSessions int
	breaks        int
	days          []history.DayTotal
}

// durationField indexes the adjustable duration inputs.
type durationField int

const (
	fieldWork durationField = iota
	fieldBreak
	fieldLongBreak
	fieldInterval
	fieldCount
)

func (f durationField) label() string {
	switch f {
	case fieldBreak:
		return "Break"
	case fieldLongBreak:
		return "Long break"
	case fieldInterval:
		return "Interval"
	default:
		return "Work"
	}
}

func overrideForField(f durationField, value int) engine.Overrides {
	switch f {
	case fieldBreak:
		return engine.Overrides{BreakMinutes: value}
	case fieldLongBreak:
		return engine.Overrides{LongBreakMinutes: value}
	case fieldInterval:
		return engine.Overrides{Interval: value}
	default:
		return engine.Overrides{WorkMinutes: value}
	}
}

type timerKeyMap struct {
	Toggle   key.Binding
	Reset    key.Binding
	Preset   key.Binding
	Field    key.Binding
	Adjust   key.Binding
	DarkMode key.Binding
	Quit     key.Binding
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Preset, k.Field, k.Adjust, k.DarkMode, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Reset, k.Preset}, {k.Field, k.Adjust, k.DarkMode, k.Quit}}
}

// Options configures the timer view.
type Options struct {
	Controller Controller
	History    HistoryReader
	Variant    string
	Preset     string
	Debug      bool
}

// Model is the main timer screen.
type Model struct {
	theme   Theme
	variant string
	ctrl    Controller
	history HistoryReader
	logger  *clog.Logger

	snap       snapshotView
	presetName string
	validation string
	flash      string
	cols       int
	rows       int

	field durationField

	allTimeFocus  int
	allTimeBreaks int
	recentDays    []history.DayTotal
	summaryStale  bool

	help     help.Model
	keymap   timerKeyMap
	phaseBar progress.Model
	runSpin  spinner.Model

	spring   harmonica.Spring
	pulsePos float64
	pulseVel float64
}

// snapshotView caches the last engine snapshot plus today's counters so
// View never touches the engine directly.
type snapshotView struct {
	work      int
	shortBrk  int
	longBrk   int
	interval  int
	remaining int
	running   bool
	cycle     string
	isBreak   bool
	fraction  float64

	count        int
	focusSummary string
	breaksLine   string
}

func New(opts Options) *Model {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "pomoglass-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()

	variant := normalizeVariant(opts.Variant)
	theme := ThemeForVariant(variant)
	phaseBar := progress.New(
		progress.WithWidth(34),
		progress.WithColors(lipgloss.Color("#E2654F"), lipgloss.Color("#4A7BD0")),
		progress.WithScaled(true),
	)
	runSpin := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(theme.Accent),
	)

	presetName := opts.Preset
	if _, ok := engine.LookupPreset(presetName); !ok {
		presetName = engine.PresetCustom
	}

	m := &Model{
		theme:        theme,
		variant:      variant,
		ctrl:         opts.Controller,
		history:      opts.History,
		logger:       logger,
		presetName:   presetName,
		cols:         96,
		rows:         30,
		help:         h,
		phaseBar:     phaseBar,
		runSpin:      runSpin,
		spring:       harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.5),
		summaryStale: true,
	}
	m.keymap = timerKeyMap{
		Toggle:   key.NewBinding(key.WithKeys("space", "s"), key.WithHelp("space", "start/pause")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Preset:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "preset")),
		Field:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "field")),
		Adjust:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "adjust")),
		DarkMode: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	m.refreshSnapshot()
	return m
}

func normalizeVariant(variant string) string {
	if variant == "glass_dark" {
		return "glass_dark"
	}
	return "glass_light"
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(clockTickCmd(), pulseTickCmd(), spinnerTickCmd(m.runSpin), m.loadSummaryCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		return m, nil
	case clockMsg:
		prevCount := m.snap.count
		m.refreshSnapshot()
		cmds := []tea.Cmd{clockTickCmd()}
		if m.snap.count != prevCount || m.summaryStale {
			cmds = append(cmds, m.loadSummaryCmd())
		}
		return m, tea.Batch(cmds...)
	case pulseMsg:
		target := 0.0
		if m.snap.running {
			target = 1.0
		}
		m.pulsePos, m.pulseVel = m.spring.Update(m.pulsePos, m.pulseVel, target)
		return m, pulseTickCmd()
	case allTimeMsg:
		m.allTimeFocus = msg.focusSessions
		m.allTimeBreaks = msg.breaks
		m.recentDays = msg.days
		m.summaryStale = false
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.runSpin, cmd = m.runSpin.Update(msg)
		return m, cmd
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Toggle):
		if m.snap.running {
			m.ctrl.Pause()
			m.flash = "Paused"
		} else {
			m.ctrl.Start(engine.Overrides{})
			m.flash = ""
		}
	case key.Matches(msg, m.keymap.Reset):
		m.ctrl.Reset()
		m.flash = "Reset"
		m.validation = ""
	case key.Matches(msg, m.keymap.Preset):
		m.cyclePreset()
	case key.Matches(msg, m.keymap.DarkMode):
		m.toggleVariant()
	case key.Matches(msg, m.keymap.Field):
		if msg.String() == "left" {
			m.field = (m.field + fieldCount - 1) % fieldCount
		} else {
			m.field = (m.field + 1) % fieldCount
		}
	case key.Matches(msg, m.keymap.Adjust):
		m.adjustField(msg.String() == "up")
	}
	m.refreshSnapshot()
	return m, nil
}

func (m *Model) View() tea.View {
	if m.cols < 1 {
		m.cols = 96
	}

	mode := DetermineLayoutMode(m.cols, m.rows)
	if mode == LayoutTooSmall {
		msg := m.theme.Validation.Render("Terminal too small. Resize to at least 60x20.")
		v := tea.NewView(lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, msg))
		v.AltScreen = true
		return v
	}

	middle := m.renderControls() + "\n\n" + m.renderSummary()
	if mode == LayoutWide {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, m.renderControls(), "   ", m.renderSummary())
	}

	sections := []string{
		m.renderHeader(),
		m.renderTimerTile(),
		middle,
		m.theme.Status.Render(m.help.View(m.keymap)),
	}
	base := m.theme.Card.Render(strings.Join(sections, "\n\n"))

	v := tea.NewView(lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, base))
	v.AltScreen = true
	return v
}

func (m *Model) renderHeader() string {
	title := m.theme.Title.Render("Pomodoro")
	subtitle := m.theme.Subtitle.Render("Stay in the flow with focused sprints.")
	return title + "\n" + subtitle
}

func (m *Model) renderTimerTile() string {
	timerStyle := m.theme.TimerFocus
	if m.snap.isBreak {
		timerStyle = m.theme.TimerBreak
	}

	clock := timerStyle.Render(FormatClock(m.snap.remaining))
	status := m.theme.Subtitle.Render(m.snap.cycle)
	if m.snap.running {
		status = m.runSpin.View() + " " + status
	}

	bar := m.phaseBar.ViewAs(m.snap.fraction)
	glow := m.theme.Glow.Render(pulseRule(m.pulsePos, 34))

	return m.theme.Tile.Render(strings.Join([]string{clock, status, bar, glow}, "\n"))
}

func (m *Model) renderControls() string {
	var fields []string
	values := []int{m.snap.work / 60, m.snap.shortBrk / 60, m.snap.longBrk / 60, m.snap.interval}
	for f := fieldWork; f < fieldCount; f++ {
		style := m.theme.Body
		if f == m.field {
			style = m.theme.Selected
		}
		fields = append(fields, style.Render(fmt.Sprintf("%s %d", f.label(), values[f])))
	}
	line := strings.Join(fields, m.theme.Muted.Render("  ·  "))

	preset := m.theme.Muted.Render("preset: ") + m.theme.Accent.Render(m.presetName)
	out := preset + "\n" + line
	if m.validation != "" {
		out += "\n" + m.theme.Validation.Render(m.validation)
	}
	if m.flash != "" {
		out += "\n" + m.theme.Status.Render(m.flash)
	}
	return out
}

func (m *Model) renderSummary() string {
	rows := []string{
		m.theme.TileTitle.Render("Productivity summary"),
		m.theme.Body.Render("Today's pomodoros  ") + m.theme.Stat.Render(fmt.Sprintf("%d", m.snap.count)),
		m.theme.Body.Render("Focus time         ") + m.theme.Stat.Render(m.snap.focusSummary),
		m.theme.Body.Render("Breaks taken       ") + m.theme.Stat.Render(m.snap.breaksLine),
	}
	if m.history != nil {
		rows = append(rows, m.theme.Muted.Render(
			fmt.Sprintf("All time: %d sessions / %d breaks", m.allTimeFocus, m.allTimeBreaks)))
		for i, d := range m.recentDays {
			if i >= 3 {
				break
			}
			rows = append(rows, m.theme.Muted.Render(
				fmt.Sprintf("%s  %d sessions, %dm", d.Day, d.FocusCount, d.FocusSeconds/60)))
		}
	}
	return m.theme.Tile.Render(strings.Join(rows, "\n"))
}

func (m *Model) refreshSnapshot() {
	s := m.ctrl.State()
	daily := m.ctrl.Stats()
	m.snap = snapshotView{
		work:         s.WorkSeconds,
		shortBrk:     s.BreakSeconds,
		longBrk:      s.LongBreakSeconds,
		interval:     s.LongBreakInterval,
		remaining:    s.RemainingSeconds,
		running:      s.Running,
		cycle:        cycleStatus(s),
		isBreak:      s.Phase.IsBreak(),
		fraction:     phaseFraction(s),
		count:        daily.Count,
		focusSummary: focusSummary(daily),
		breaksLine:   breaksSummary(daily),
	}
}

func (m *Model) cyclePreset() {
	names := engine.PresetNames()
	next := names[0]
	for i, name := range names {
		if name == m.presetName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if m.ctrl.ApplyPreset(next) {
		m.presetName = next
		m.flash = "Preset: " + next
		m.validation = ""
	}
}

func (m *Model) adjustField(up bool) {
	values := []int{m.snap.work / 60, m.snap.shortBrk / 60, m.snap.longBrk / 60, m.snap.interval}
	value := values[m.field]
	if up {
		value++
	} else {
		value--
	}
	if value <= 0 {
		m.validation = fmt.Sprintf("%s must be greater than zero.", m.field.label())
		return
	}
	m.validation = ""
	m.presetName = engine.PresetCustom
	m.ctrl.UpdateDurations(overrideForField(m.field, value))
}

func (m *Model) toggleVariant() {
	if m.variant == "glass_dark" {
		m.variant = "glass_light"
	} else {
		m.variant = "glass_dark"
	}
	m.theme = ThemeForVariant(m.variant)
	m.runSpin = spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(m.theme.Accent),
	)
}

// Run blocks until the user quits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m *Model) loadSummaryCmd() tea.Cmd {
	if m.history == nil {
		return nil
	}
	reader := m.history
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		summary, err := reader.Summary(ctx)
		if err != nil {
			logger.Warn("history summary failed", "err", err)
			return allTimeMsg{}
		}
		days, err := reader.RecentDays(ctx, 7)
		if err != nil {
			logger.Warn("recent days failed", "err", err)
		}
		return allTimeMsg{
			focusSessions: summary.FocusSessions,
			breaks:        summary.ShortBreaks + summary.LongBreaks,
			days:          days,
		}
	}
}

// pulseRule draws the glow line under the clock. Width scales with the
// spring position so the line breathes while the timer runs.
func pulseRule(pos float64, width int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	lit := int(pos * float64(width))
	return strings.Repeat("━", lit) + strings.Repeat("─", width-lit)
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func pulseTickCmd() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return pulseMsg(t) })
}

func spinnerTickCmd(model spinner.Model) tea.Cmd {
	return func() tea.Msg {
		return model.Tick()
	}
}
