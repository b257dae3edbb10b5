// Package tui holds the bubbletea model for the meditation timer screen.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astroflow/astroflow/internal/timer"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type KeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)
)

// MeditateModel runs the countdown screen and records whether the session
// finished.
type MeditateModel struct {
	timer    *timer.Timer
	progress progress.Model
	keys     KeyMap
	quote    string
	total    int
	width    int

	Completed bool
}

func NewMeditateModel(minutes int, quote string) MeditateModel {
	t := timer.New(minutes)
	t.Start()
	return MeditateModel{
		timer:    t,
		progress: progress.New(progress.WithDefaultGradient()),
		keys:     DefaultKeyMap(),
		quote:    quote,
		total:    minutes * 60,
	}
}

func (m MeditateModel) Init() tea.Cmd {
	return tick()
}

func (m MeditateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.timer.State().Paused {
				m.timer.Resume()
			} else {
				m.timer.Pause()
			}
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
			m.timer.Start()
		}

	case tickMsg:
		if m.timer.Tick() {
			m.Completed = true
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}

func (m MeditateModel) View() string {
	state := m.timer.State()

	status := "breathe"
	if state.Paused {
		status = "paused"
	}

	done := float64(m.total-state.Remaining) / float64(m.total)
	view := fmt.Sprintf("%s\n%s  %s\n%s\n%s",
		quoteStyle.Render(m.quote),
		timeStyle.Render(timer.FormatTime(state.Remaining)),
		status,
		lipgloss.NewStyle().Padding(0, 2).Render(m.progress.ViewAs(done)),
		helpStyle.Render("space pause • r reset • q quit"),
	)
	return view
}
