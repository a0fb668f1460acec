package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/models"
)

// RunStatusTUI starts the live status view for an open session
func RunStatusTUI(session *models.Session) error {
	model := NewStatusModel(session)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(StatusModel); ok {
		if m.err != nil {
			fmt.Printf("Error: %v\n", m.err)
		} else if m.stopped != nil {
			fmt.Printf("Clocked out from %s | Duration: %s\n",
				m.stopped.Activity,
				export.FormatClock(*m.stopped.DurationSeconds))
		}
	}

	return nil
}
