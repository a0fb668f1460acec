package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/models"
	"github.com/balkashynov/clockwork/internal/validate"
)

// NotFoundError is returned when a clock-out finds no open session for the
// activity. It is user-visible and non-fatal.
type NotFoundError struct {
	Activity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no active clock-in found for %s", e.Activity)
}

// StoreError wraps a persistence failure with the operation that hit it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ClockIn inserts a new open session for the given labels. No check against
// an existing open session for the same activity happens here; clock-out
// resolves stacked opens most-recent-first.
func ClockIn(category, activity, task, notes string) (*models.Session, error) {
	category, err := validate.Label(category)
	if err != nil {
		return nil, err
	}
	activity, err = validate.Label(activity)
	if err != nil {
		return nil, err
	}
	task, err = validate.Label(task)
	if err != nil {
		return nil, err
	}
	notes, err = validate.Optional(notes)
	if err != nil {
		return nil, err
	}

	session := models.Session{
		Category:  category,
		Activity:  activity,
		Task:      task,
		StartTime: time.Now(),
		Notes:     notes,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, &StoreError{Op: "failed to clock in", Err: err}
	}

	return &session, nil
}

// ClockOut closes the most recently opened session for the activity: among
// all open rows with a matching activity, the one with the latest start_time
// wins. Notes passed here are merged into the stored notes, not overwritten.
func ClockOut(activity, notes string) (*models.Session, error) {
	activity, err := validate.Label(activity)
	if err != nil {
		return nil, err
	}
	notes, err = validate.Optional(notes)
	if err != nil {
		return nil, err
	}

	var session models.Session
	err = DB.Where("activity = ? AND end_time IS NULL", activity).
		Order("start_time DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Activity: activity}
	}
	if err != nil {
		return nil, &StoreError{Op: "failed to clock out", Err: err}
	}

	now := time.Now()
	duration := int64(now.Sub(session.StartTime).Seconds())
	session.EndTime = &now
	session.DurationSeconds = &duration
	session.Notes = models.MergeNotes(session.Notes, notes)

	if err := DB.Save(&session).Error; err != nil {
		return nil, &StoreError{Op: "failed to clock out", Err: err}
	}

	return &session, nil
}

// ActiveSession returns the most recently opened session still running, or
// nil when nothing is being tracked.
func ActiveSession() (*models.Session, error) {
	var session models.Session
	err := DB.Where("end_time IS NULL").Order("start_time DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "failed to load active session", Err: err}
	}
	return &session, nil
}

// SessionsInRange returns closed sessions whose start date falls within the
// inclusive range, ordered by start time. Category narrows the scan when set.
func SessionsInRange(start, end time.Time, category string) ([]models.Session, error) {
	return rangeQuery(start, end, category, "start_time ASC")
}

// ExportSessions is SessionsInRange ordered by id, the order the CSV
// artifact uses.
func ExportSessions(start, end time.Time, category string) ([]models.Session, error) {
	return rangeQuery(start, end, category, "id ASC")
}

func rangeQuery(start, end time.Time, category, order string) ([]models.Session, error) {
	query := DB.Where("date(start_time) BETWEEN ? AND ?", daterange.Format(start), daterange.Format(end)).
		Where("duration IS NOT NULL")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var sessions []models.Session
	if err := query.Order(order).Find(&sessions).Error; err != nil {
		return nil, &StoreError{Op: "failed to query sessions", Err: err}
	}
	return sessions, nil
}
