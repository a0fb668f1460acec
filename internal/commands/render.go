package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/report"
	"github.com/balkashynov/clockwork/internal/tui"
)

var weekdayHeaders = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorBorder))
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentBright)).Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// renderGrid draws one week of the calendar grid: a row per category, a
// column per weekday, empty cells left blank.
func renderGrid(grid report.WeekGrid) string {
	t := newTable(weekdayHeaders...)
	for _, category := range grid.Categories {
		row := make([]string, 7)
		for day := 0; day < 7; day++ {
			if seconds := grid.Cell(category, day); seconds > 0 {
				row[day] = category + "\n" + export.FormatClock(seconds)
			}
		}
		t.Row(row...)
	}
	return t.Render()
}

// renderSummary draws the nested summary with blank cells for the columns
// that belong to a deeper level.
func renderSummary(rows []report.SummaryRow) string {
	t := newTable("CATEGORY", "ACTIVITY", "TASK", "DURATION")
	for _, row := range rows {
		t.Row(row.Category, row.Activity, row.Task, export.FormatClock(row.Seconds))
	}
	return t.Render()
}
