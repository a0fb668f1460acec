// Package report rolls closed sessions up into the three aggregate shapes
// the tracker prints: calendar grids, nested summaries and proportional
// breakdowns. Durations are summed as raw integer seconds; formatting
// happens at the export boundary. Iteration order is sorted by label at
// every grouping level.
package report

import (
	"sort"
	"time"

	"github.com/balkashynov/clockwork/internal/models"
)

// WeekGrid is one calendar week of aggregated durations: a row per
// category, a column per weekday (Monday first). A zero cell means no time
// was logged and renders blank.
type WeekGrid struct {
	Year       int
	Week       int // ISO week number
	Categories []string
	Cells      map[string][7]int64
}

// Cell returns the summed seconds for a category on a weekday, Monday = 0.
func (g WeekGrid) Cell(category string, day int) int64 {
	return g.Cells[category][day]
}

// BuildGrids groups sessions into per-ISO-week grids and returns them in
// chronological order along with the grand total across all weeks.
func BuildGrids(sessions []models.Session) ([]WeekGrid, int64) {
	type weekKey struct {
		year int
		week int
	}

	weeks := make(map[weekKey]map[string][7]int64)
	var grandTotal int64

	for _, s := range sessions {
		if s.DurationSeconds == nil {
			continue
		}
		year, week := s.StartTime.ISOWeek()
		key := weekKey{year: year, week: week}
		if weeks[key] == nil {
			weeks[key] = make(map[string][7]int64)
		}
		day := mondayIndex(s.StartTime)
		cells := weeks[key][s.Category]
		cells[day] += *s.DurationSeconds
		weeks[key][s.Category] = cells
		grandTotal += *s.DurationSeconds
	}

	keys := make([]weekKey, 0, len(weeks))
	for key := range weeks {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	grids := make([]WeekGrid, 0, len(keys))
	for _, key := range keys {
		categories := make([]string, 0, len(weeks[key]))
		for category := range weeks[key] {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		grids = append(grids, WeekGrid{
			Year:       key.year,
			Week:       key.week,
			Categories: categories,
			Cells:      weeks[key],
		})
	}

	return grids, grandTotal
}

// mondayIndex maps a timestamp's weekday to 0..6 with Monday as 0.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
