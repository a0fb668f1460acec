package report

import (
	"sort"

	"github.com/balkashynov/clockwork/internal/models"
)

// Slice is one labeled share of the proportional breakdown.
type Slice struct {
	Label   string
	Seconds int64
	Share   float64 // fraction of the total, 0..1
}

// BuildBreakdown groups sessions by category, or by activity when a
// category filter was applied to the scan, and computes each group's share
// of the total duration. Slices come back sorted by label.
func BuildBreakdown(sessions []models.Session, byActivity bool) ([]Slice, int64) {
	totals := make(map[string]int64)
	var total int64

	for _, s := range sessions {
		if s.DurationSeconds == nil {
			continue
		}
		label := s.Category
		if byActivity {
			label = s.Activity
		}
		totals[label] += *s.DurationSeconds
		total += *s.DurationSeconds
	}

	if total == 0 {
		return nil, 0
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	slices := make([]Slice, 0, len(labels))
	for _, label := range labels {
		slices = append(slices, Slice{
			Label:   label,
			Seconds: totals[label],
			Share:   float64(totals[label]) / float64(total),
		})
	}

	return slices, total
}
