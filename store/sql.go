// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/rfid-attendance/models"
)

// SQLStore persists attendance data through a database/sql pool.
// Every method scopes its own connection or transaction and releases it
// before returning.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ScanTag(ctx context.Context, uid string, eventID int64, at time.Time) (*models.Student, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var student models.Student
	err = tx.QueryRowContext(ctx, `
		SELECT id, rfid_id, name, course_year FROM students WHERE rfid_id = $1
	`, uid).Scan(&student.ID, &student.RFIDID, &student.Name, &student.CourseYear)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO attendance_logs (student_id, event_id, scan_timestamp)
		VALUES ($1, $2, $3)
	`, student.ID, eventID, FormatTimestamp(at))
	if err != nil {
		return nil, fmt.Errorf("failed to log attendance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit scan: %w", err)
	}

	return &student, nil
}

func (s *SQLStore) RegisterStudent(ctx context.Context, req models.RegisterRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM students WHERE rfid_id = $1
	`, req.RFIDID).Scan(&existingID)

	if err == nil {
		return ErrDuplicateRFID
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check RFID: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO students (rfid_id, name, course_year) VALUES ($1, $2, $3)
	`, req.RFIDID, req.Name, req.CourseYear)
	if isUniqueViolation(err) {
		return ErrDuplicateRFID
	}
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return tx.Commit()
}

func (s *SQLStore) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rfid_id, name, course_year FROM students ORDER BY name, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.RFIDID, &st.Name, &st.CourseYear); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

const attendanceSelect = `
	SELECT al.log_id, al.student_id, al.event_id, al.scan_timestamp,
		s.name, s.course_year, e.event_name
	FROM attendance_logs al
	JOIN students s ON al.student_id = s.id
	JOIN events e ON al.event_id = e.event_id
`

func (s *SQLStore) ListAttendance(ctx context.Context, eventID *int64) ([]models.AttendanceRecord, error) {
	query := attendanceSelect
	args := []any{}

	if eventID != nil {
		query += " WHERE al.event_id = $1 ORDER BY al.scan_timestamp DESC, al.log_id DESC"
		args = append(args, *eventID)
	} else {
		query += " ORDER BY al.scan_timestamp DESC, al.log_id DESC LIMIT " + strconv.Itoa(RecentAttendanceLimit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var rec models.AttendanceRecord
		var ts sql.NullString
		if err := rows.Scan(
			&rec.LogID,
			&rec.StudentID,
			&rec.EventID,
			&ts,
			&rec.Name,
			&rec.CourseYear,
			&rec.EventName,
		); err != nil {
			return nil, err
		}
		rec.ScanTimestamp = ts.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLStore) CreateEvent(ctx context.Context, name, date string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var eventID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO events (event_name, event_date) VALUES ($1, $2)
		RETURNING event_id
	`, name, date).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return eventID, nil
}

func (s *SQLStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT event_id, event_name, event_date FROM events ORDER BY event_date DESC, event_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var evt models.Event
		if err := rows.Scan(&evt.EventID, &evt.EventName, &evt.EventDate); err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// isUniqueViolation reports whether err came from a UNIQUE constraint, which
// happens when a concurrent registration wins between check and insert.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
