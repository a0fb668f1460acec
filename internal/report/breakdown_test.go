package report

import (
	"math"
	"testing"
	"time"

	"github.com/balkashynov/clockwork/internal/models"
)

func TestBuildBreakdownByCategory(t *testing.T) {
	start := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.Local)
	slices, total := BuildBreakdown([]models.Session{
		closed("Study", "physics", "ch5", start, 3000),
		closed("Work", "backend", "review", start, 1000),
	}, false)

	if total != 4000 {
		t.Errorf("total = %d, want 4000", total)
	}
	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(slices))
	}
	if slices[0].Label != "Study" || slices[1].Label != "Work" {
		t.Errorf("labels not sorted: %+v", slices)
	}
	if math.Abs(slices[0].Share-0.75) > 1e-9 {
		t.Errorf("Study share = %f, want 0.75", slices[0].Share)
	}
	if math.Abs(slices[1].Share-0.25) > 1e-9 {
		t.Errorf("Work share = %f, want 0.25", slices[1].Share)
	}
}

func TestBuildBreakdownByActivity(t *testing.T) {
	start := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.Local)
	slices, _ := BuildBreakdown([]models.Session{
		closed("Study", "physics", "ch5", start, 600),
		closed("Study", "maths", "algebra", start, 600),
	}, true)

	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(slices))
	}
	if slices[0].Label != "maths" || slices[1].Label != "physics" {
		t.Errorf("activity grouping wrong: %+v", slices)
	}
}

func TestBuildBreakdownSkipsOpenAndEmpty(t *testing.T) {
	start := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.Local)

	slices, total := BuildBreakdown([]models.Session{open("Study", "physics", "ch5", start)}, false)
	if len(slices) != 0 || total != 0 {
		t.Errorf("open-only input produced slices=%v total=%d", slices, total)
	}

	slices, total = BuildBreakdown(nil, false)
	if len(slices) != 0 || total != 0 {
		t.Errorf("empty input produced slices=%v total=%d", slices, total)
	}
}
