package models

import (
	"testing"
	"time"
)

func TestMergeNotes(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		extra    string
		want     string
	}{
		{name: "both empty", existing: "", extra: "", want: ""},
		{name: "only existing", existing: "first pass", extra: "", want: "first pass"},
		{name: "only new", existing: "", extra: "wrapped up", want: "wrapped up"},
		{name: "space joined", existing: "first pass", extra: "wrapped up", want: "first pass wrapped up"},
		{name: "blank extra skipped", existing: "kept", extra: "   ", want: "kept"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeNotes(tt.existing, tt.extra); got != tt.want {
				t.Errorf("MergeNotes(%q, %q) = %q, want %q", tt.existing, tt.extra, got, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	s := Session{StartTime: time.Now()}
	if !s.Open() {
		t.Error("session without end time should be open")
	}

	now := time.Now()
	s.EndTime = &now
	if s.Open() {
		t.Error("session with end time should be closed")
	}
}
