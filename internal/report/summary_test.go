package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/balkashynov/clockwork/internal/models"
)

func closed(category, activity, task string, start time.Time, seconds int64) models.Session {
	end := start.Add(time.Duration(seconds) * time.Second)
	return models.Session{
		Category:        category,
		Activity:        activity,
		Task:            task,
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: &seconds,
	}
}

func open(category, activity, task string, start time.Time) models.Session {
	return models.Session{Category: category, Activity: activity, Task: task, StartTime: start}
}

func TestBuildSummaryAdditivity(t *testing.T) {
	start := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.Local)
	sessions := []models.Session{
		closed("Study", "physics", "ch5", start, 3600),
		closed("Study", "physics", "ch6", start, 1800),
		closed("Work", "backend", "review", start, 900),
	}

	rows, total := BuildSummary(sessions)
	if total != 6300 {
		t.Errorf("grand total = %d, want 6300", total)
	}

	want := []SummaryRow{
		{Category: "Study", Seconds: 5400},
		{Activity: "physics", Seconds: 5400},
		{Task: "ch5", Seconds: 3600},
		{Task: "ch6", Seconds: 1800},
		{Category: "Work", Seconds: 900},
		{Activity: "backend", Seconds: 900},
		{Task: "review", Seconds: 900},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}
}

func TestBuildSummaryMergesRepeatedTasks(t *testing.T) {
	start := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.Local)
	sessions := []models.Session{
		closed("Study", "physics", "ch5", start, 1000),
		closed("Study", "physics", "ch5", start.Add(2*time.Hour), 500),
	}

	rows, total := BuildSummary(sessions)
	if total != 1500 {
		t.Errorf("grand total = %d, want 1500", total)
	}
	// Category, activity and one merged leaf row.
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3: %+v", len(rows), rows)
	}
	if rows[2].Task != "ch5" || rows[2].Seconds != 1500 {
		t.Errorf("leaf row = %+v, want ch5/1500", rows[2])
	}
}

func TestBuildSummarySkipsOpenSessions(t *testing.T) {
	start := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.Local)
	sessions := []models.Session{
		closed("Study", "physics", "ch5", start, 3600),
		open("Study", "physics", "ch7", start),
	}

	rows, total := BuildSummary(sessions)
	if total != 3600 {
		t.Errorf("grand total = %d, want 3600 (open session excluded)", total)
	}
	for _, row := range rows {
		if row.Task == "ch7" {
			t.Error("open session leaked into summary")
		}
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	rows, total := BuildSummary(nil)
	if len(rows) != 0 || total != 0 {
		t.Errorf("empty input produced rows=%v total=%d", rows, total)
	}
}
