package report

import (
	"sort"

	"github.com/balkashynov/clockwork/internal/models"
)

// SummaryRow is one line of the nested category/activity/task summary.
// Rows at the category and activity level leave the deeper columns blank;
// Seconds holds the subtotal of everything underneath the row.
type SummaryRow struct {
	Category string
	Activity string
	Task     string
	Seconds  int64
}

// BuildSummary rolls sessions into a depth-first nested summary and the
// grand total, which always equals the sum of all leaf (task) durations.
func BuildSummary(sessions []models.Session) ([]SummaryRow, int64) {
	nested := make(map[string]map[string]map[string]int64)

	for _, s := range sessions {
		if s.DurationSeconds == nil {
			continue
		}
		if nested[s.Category] == nil {
			nested[s.Category] = make(map[string]map[string]int64)
		}
		if nested[s.Category][s.Activity] == nil {
			nested[s.Category][s.Activity] = make(map[string]int64)
		}
		nested[s.Category][s.Activity][s.Task] += *s.DurationSeconds
	}

	var rows []SummaryRow
	var grandTotal int64

	for _, category := range sortedKeys(nested) {
		activities := nested[category]

		var categoryTotal int64
		for _, tasks := range activities {
			for _, seconds := range tasks {
				categoryTotal += seconds
			}
		}
		rows = append(rows, SummaryRow{Category: category, Seconds: categoryTotal})
		grandTotal += categoryTotal

		for _, activity := range sortedKeys(activities) {
			tasks := activities[activity]

			var activityTotal int64
			for _, seconds := range tasks {
				activityTotal += seconds
			}
			rows = append(rows, SummaryRow{Activity: activity, Seconds: activityTotal})

			for _, task := range sortedKeys(tasks) {
				rows = append(rows, SummaryRow{Task: task, Seconds: tasks[task]})
			}
		}
	}

	return rows, grandTotal
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
