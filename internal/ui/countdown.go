package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"pomoglass/internal/countdown"
)

type countdownTickMsg time.Time

type countdownKeyMap struct {
	Start  key.Binding
	Reset  key.Binding
	Adjust key.Binding
	Quit   key.Binding
}

func (k countdownKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Adjust, k.Quit}
}

func (k countdownKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Reset}, {k.Adjust, k.Quit}}
}

// CountdownModel is the standalone one-shot timer screen.
type CountdownModel struct {
	theme    Theme
	timer    *countdown.Countdown
	minutes  float64
	lastTick time.Time

	validation string
	finished   bool
	cols       int
	rows       int

	help   help.Model
	keymap countdownKeyMap
}

// NewCountdown builds the screen around an armed-on-demand timer.
func NewCountdown(minutes float64, variant string) *CountdownModel {
	h := help.New()
	h.Styles = help.DefaultDarkStyles()

	if minutes <= 0 {
		minutes = 5
	}
	m := &CountdownModel{
		theme:   ThemeForVariant(variant),
		timer:   countdown.New(),
		minutes: minutes,
		cols:    96,
		rows:    20,
		help:    h,
	}
	m.keymap = countdownKeyMap{
		Start:  key.NewBinding(key.WithKeys("space", "s"), key.WithHelp("space", "start")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Adjust: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "minutes")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	return m
}

func (m *CountdownModel) Init() tea.Cmd {
	return countdownTickCmd()
}

func (m *CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		return m, nil
	case countdownTickMsg:
		m.advance(time.Time(msg))
		return m, countdownTickCmd()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// advance burns down whole elapsed seconds, carrying the fractional
// remainder in lastTick so slow frames never lose time.
func (m *CountdownModel) advance(now time.Time) {
	if !m.timer.Running() {
		m.lastTick = now
		return
	}
	elapsed := int(now.Sub(m.lastTick) / time.Second)
	if elapsed <= 0 {
		return
	}
	m.lastTick = m.lastTick.Add(time.Duration(elapsed) * time.Second)
	if m.timer.Tick(elapsed) {
		m.finished = true
	}
}

func (m *CountdownModel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Start):
		if err := m.timer.Start(m.minutes); err != nil {
			m.validation = "Minutes must be greater than zero."
			return m, nil
		}
		m.lastTick = time.Now()
		m.finished = false
		m.validation = ""
	case key.Matches(msg, m.keymap.Reset):
		m.timer.Reset()
		m.finished = false
		m.validation = ""
	case key.Matches(msg, m.keymap.Adjust):
		if m.timer.Running() {
			return m, nil
		}
		if msg.String() == "up" {
			m.minutes++
		} else if m.minutes > 1 {
			m.minutes--
		} else {
			m.validation = "Minutes must be greater than zero."
			return m, nil
		}
		m.validation = ""
	}
	return m, nil
}

func (m *CountdownModel) View() tea.View {
	clock := m.theme.TimerFocus.Render(FormatClock(m.displaySeconds()))

	var status string
	switch {
	case m.finished:
		status = m.theme.Accent.Render("Time's up!")
	case m.timer.Running():
		status = m.theme.Subtitle.Render("Counting down")
	default:
		status = m.theme.Subtitle.Render(fmt.Sprintf("Ready: %.0f minutes", m.minutes))
	}

	sections := []string{
		m.theme.Title.Render("Countdown"),
		m.theme.Tile.Render(clock + "\n" + status),
	}
	if m.validation != "" {
		sections = append(sections, m.theme.Validation.Render(m.validation))
	}
	sections = append(sections, m.theme.Status.Render(m.help.View(m.keymap)))

	base := m.theme.Card.Render(strings.Join(sections, "\n\n"))
	v := tea.NewView(lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, base))
	v.AltScreen = true
	return v
}

func (m *CountdownModel) displaySeconds() int {
	if !m.timer.Running() && !m.finished && m.timer.Remaining() == 0 {
		return int(m.minutes * 60)
	}
	return m.timer.Remaining()
}

// Run blocks until the user quits.
func (m *CountdownModel) Run() error {
	_, err := tea.NewProgram(m).Run()
	return err
}

func countdownTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg { return countdownTickMsg(t) })
}
