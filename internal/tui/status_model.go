package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/models"
)

// StatusModel is the live elapsed-time view of the running session
type StatusModel struct {
	width  int
	height int

	session   *models.Session
	stopwatch stopwatch.Model

	stopped *models.Session // set when the session was clocked out from the view
	err     error
}

// NewStatusModel creates the live status view for an open session
func NewStatusModel(session *models.Session) StatusModel {
	return StatusModel{
		session:   session,
		stopwatch: stopwatch.NewWithInterval(time.Second),
	}
}

// Init starts the per-second refresh ticker
func (m StatusModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

// Update handles messages
func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// Leave the session running
			return m, tea.Quit
		case "s", "o":
			session, err := db.ClockOut(m.session.Activity, "")
			if err != nil {
				m.err = err
			} else {
				m.stopped = session
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

// View renders the status card
func (m StatusModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	clockStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	elapsed := time.Since(m.session.StartTime)
	clock := fmt.Sprintf("%d:%02d:%02d",
		int(elapsed.Hours()),
		int(elapsed.Minutes())%60,
		int(elapsed.Seconds())%60)

	content := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Tracking")+" "+valueStyle.Render(
			fmt.Sprintf("%s / %s / %s", m.session.Category, m.session.Activity, m.session.Task)),
		labelStyle.Render("Started")+"  "+valueStyle.Render(m.session.StartTime.Format("15:04:05")),
		"",
		clockStyle.Render(clock),
		"",
		helpStyle.Render("s: clock out • q: leave running"),
	)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 3).
		Render(content)

	if m.width == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
