package report

import (
	"testing"
	"time"

	"github.com/balkashynov/clockwork/internal/models"
)

func TestBuildGridsWeekdayBuckets(t *testing.T) {
	monday := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.Local)
	sunday := monday.AddDate(0, 0, 6)

	grids, total := BuildGrids([]models.Session{
		closed("Study", "physics", "ch5", monday, 3600),
		closed("Study", "physics", "ch5", sunday, 1800),
		closed("Work", "backend", "review", monday, 900),
	})

	if total != 6300 {
		t.Errorf("grand total = %d, want 6300", total)
	}
	if len(grids) != 1 {
		t.Fatalf("got %d grids, want 1", len(grids))
	}

	grid := grids[0]
	if got := grid.Cell("Study", 0); got != 3600 {
		t.Errorf("Study Monday = %d, want 3600", got)
	}
	if got := grid.Cell("Study", 6); got != 1800 {
		t.Errorf("Study Sunday = %d, want 1800", got)
	}
	if got := grid.Cell("Work", 0); got != 900 {
		t.Errorf("Work Monday = %d, want 900", got)
	}
	if got := grid.Cell("Study", 3); got != 0 {
		t.Errorf("empty cell = %d, want 0", got)
	}

	wantCategories := []string{"Study", "Work"}
	for i, category := range grid.Categories {
		if category != wantCategories[i] {
			t.Errorf("categories = %v, want %v", grid.Categories, wantCategories)
			break
		}
	}
}

func TestBuildGridsSplitsWeeks(t *testing.T) {
	week1Monday := time.Date(2026, time.August, 17, 9, 0, 0, 0, time.Local)
	week2Monday := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.Local)

	grids, total := BuildGrids([]models.Session{
		closed("Study", "physics", "ch5", week1Monday, 100),
		closed("Study", "physics", "ch5", week2Monday, 200),
	})

	if total != 300 {
		t.Errorf("grand total = %d, want 300", total)
	}
	if len(grids) != 2 {
		t.Fatalf("got %d grids, want 2", len(grids))
	}
	if grids[0].Week >= grids[1].Week {
		t.Errorf("weeks not chronological: %d then %d", grids[0].Week, grids[1].Week)
	}
	if grids[0].Cell("Study", 0) != 100 || grids[1].Cell("Study", 0) != 200 {
		t.Error("durations landed in the wrong week")
	}
}

func TestBuildGridsEmpty(t *testing.T) {
	grids, total := BuildGrids(nil)
	if len(grids) != 0 || total != 0 {
		t.Errorf("empty input produced grids=%v total=%d", grids, total)
	}
}
