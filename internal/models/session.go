package models

import (
	"strings"
	"time"
)

// Session represents one clocked interval of work under a
// category/activity/task label hierarchy. A nil EndTime means the session
// is still open; DurationSeconds is set exactly once, at clock-out.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category        string     `gorm:"not null;index" json:"category"`
	Activity        string     `gorm:"not null;index" json:"activity"`
	Task            string     `gorm:"not null" json:"task"`
	StartTime       time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds *int64     `gorm:"column:duration" json:"duration"`
	Notes           string     `json:"notes"`
}

// TableName keeps the historical table name used by the tracker.
func (Session) TableName() string {
	return "timelog"
}

// Open reports whether the session has not been clocked out yet.
func (s Session) Open() bool {
	return s.EndTime == nil
}

// MergeNotes joins existing and new notes with a single space, skipping
// blanks so a clock-out without notes never touches the stored text.
func MergeNotes(existing, extra string) string {
	existing = strings.TrimSpace(existing)
	extra = strings.TrimSpace(extra)
	switch {
	case existing == "":
		return extra
	case extra == "":
		return existing
	default:
		return existing + " " + extra
	}
}
