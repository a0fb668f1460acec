// Package export shapes raw and aggregated session rows for tabular
// display, CSV serialization and chart rendering. It owns the only
// formatting policy: an open session's end time renders as "Ongoing", its
// missing duration as "N/A", and durations become human-readable strings
// here and nowhere else.
package export

import (
	"fmt"
	"strconv"

	"github.com/balkashynov/clockwork/internal/models"
)

// TimeLayout is how timestamps render in tables and CSV cells.
const TimeLayout = "2006-01-02 15:04:05"

// Header returns the fixed column order for tabular output.
func Header(withID bool) []string {
	columns := []string{"CATEGORY", "ACTIVITY", "TASK", "START_TIME", "END_TIME", "DURATION", "NOTES"}
	if withID {
		return append([]string{"ID"}, columns...)
	}
	return columns
}

// TableRows shapes sessions into display rows in the fixed column order.
func TableRows(sessions []models.Session, withID bool) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		endTime := "Ongoing"
		duration := "N/A"
		if s.EndTime != nil {
			endTime = s.EndTime.Format(TimeLayout)
		}
		if s.DurationSeconds != nil {
			duration = FormatClock(*s.DurationSeconds)
		}

		row := []string{
			s.Category,
			s.Activity,
			s.Task,
			s.StartTime.Format(TimeLayout),
			endTime,
			duration,
			s.Notes,
		}
		if withID {
			row = append([]string{strconv.FormatUint(uint64(s.ID), 10)}, row...)
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatClock renders seconds as H:MM:SS.
func FormatClock(seconds int64) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatHoursMinutes renders seconds as "XXh YYm".
func FormatHoursMinutes(seconds int64) string {
	minutes := seconds / 60
	return fmt.Sprintf("%02dh %02dm", minutes/60, minutes%60)
}
