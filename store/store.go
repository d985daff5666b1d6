// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/rfid-attendance/models"
)

// RecentAttendanceLimit caps the unfiltered attendance listing
const RecentAttendanceLimit = 100

var (
	// ErrDuplicateRFID is returned by RegisterStudent when the tag is taken
	ErrDuplicateRFID = errors.New("RFID already registered")

	// ErrUnknownEvent is returned when a scan references a missing event
	// and the backend checks references itself
	ErrUnknownEvent = errors.New("event does not exist")
)

// Store is the data contract the HTTP handlers depend on.
type Store interface {
	// ScanTag looks up the student holding uid and, when found, logs one
	// attendance row for eventID stamped with at. A nil student means the
	// tag is unknown and nothing was written.
	ScanTag(ctx context.Context, uid string, eventID int64, at time.Time) (*models.Student, error)

	// RegisterStudent inserts a student, or returns ErrDuplicateRFID
	RegisterStudent(ctx context.Context, req models.RegisterRequest) error

	// ListStudents returns every student ordered by name
	ListStudents(ctx context.Context) ([]models.Student, error)

	// ListAttendance returns joined log rows, newest first. With a nil
	// eventID only the RecentAttendanceLimit newest rows are returned.
	ListAttendance(ctx context.Context, eventID *int64) ([]models.AttendanceRecord, error)

	// CreateEvent inserts an event and returns its id
	CreateEvent(ctx context.Context, name, date string) (int64, error)

	// ListEvents returns every event ordered by date, newest first
	ListEvents(ctx context.Context) ([]models.Event, error)

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error
}

// FormatTimestamp renders t the way scan_timestamp is stored
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(models.TimestampLayout)
}
