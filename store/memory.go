// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/danielhkuo/rfid-attendance/db"
	"github.com/danielhkuo/rfid-attendance/models"
)

// MockStudents are the fixture cards used when testing device firmware
// against a server without a database.
var MockStudents = []models.RegisterRequest{
	{RFIDID: "56EEC2B8", Name: "John Doe", CourseYear: "BSIT-3"},
	{RFIDID: "D513F45E", Name: "Jane Smith", CourseYear: "BSIT-2"},
	{RFIDID: "A0C470AC", Name: "Bob Johnson", CourseYear: "Grade 10"},
	{RFIDID: "19E1DC14", Name: "Alice Brown", CourseYear: "Grade 11"},
	{RFIDID: "60AAB4B2", Name: "Charlie Wilson", CourseYear: "BSIT-1"},
	{RFIDID: "D5E7F55E", Name: "Diana Davis", CourseYear: "Grade 12"},
}

type memoryLog struct {
	id        int64
	studentID int64
	eventID   int64
	timestamp string
}

// MemoryStore is an in-process Store used as a test double and for mock
// mode. Like the SQL schema it rejects logs for unknown events.
type MemoryStore struct {
	mu       sync.Mutex
	students []models.Student
	events   []models.Event
	logs     []memoryLog
}

// NewMemoryStore returns a store holding only the default event
func NewMemoryStore(defaultEventDate string) *MemoryStore {
	return &MemoryStore{
		events: []models.Event{{EventID: 1, EventName: db.DefaultEventName, EventDate: defaultEventDate}},
	}
}

// SeedMockStudents registers MockStudents, skipping tags already present
func (m *MemoryStore) SeedMockStudents(ctx context.Context) error {
	for _, req := range MockStudents {
		if err := m.RegisterStudent(ctx, req); err != nil && !errors.Is(err, ErrDuplicateRFID) {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) ScanTag(ctx context.Context, uid string, eventID int64, at time.Time) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var student *models.Student
	for i := range m.students {
		if m.students[i].RFIDID == uid {
			st := m.students[i]
			student = &st
			break
		}
	}
	if student == nil {
		return nil, nil
	}

	if m.findEvent(eventID) == nil {
		return nil, ErrUnknownEvent
	}

	m.logs = append(m.logs, memoryLog{
		id:        int64(len(m.logs) + 1),
		studentID: student.ID,
		eventID:   eventID,
		timestamp: FormatTimestamp(at),
	})

	return student, nil
}

func (m *MemoryStore) RegisterStudent(ctx context.Context, req models.RegisterRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, st := range m.students {
		if st.RFIDID == req.RFIDID {
			return ErrDuplicateRFID
		}
	}

	m.students = append(m.students, models.Student{
		ID:         int64(len(m.students) + 1),
		RFIDID:     req.RFIDID,
		Name:       req.Name,
		CourseYear: req.CourseYear,
	})
	return nil
}

func (m *MemoryStore) ListStudents(ctx context.Context) ([]models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	students := append([]models.Student{}, m.students...)
	m.mu.Unlock()

	sort.SliceStable(students, func(i, j int) bool {
		return students[i].Name < students[j].Name
	})
	return students, nil
}

func (m *MemoryStore) ListAttendance(ctx context.Context, eventID *int64) ([]models.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records := []models.AttendanceRecord{}
	for _, l := range m.logs {
		if eventID != nil && l.eventID != *eventID {
			continue
		}
		st := m.students[l.studentID-1]
		evt := m.findEvent(l.eventID)
		records = append(records, models.AttendanceRecord{
			LogID:         l.id,
			StudentID:     l.studentID,
			EventID:       l.eventID,
			ScanTimestamp: l.timestamp,
			Name:          st.Name,
			CourseYear:    st.CourseYear,
			EventName:     evt.EventName,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].ScanTimestamp != records[j].ScanTimestamp {
			return records[i].ScanTimestamp > records[j].ScanTimestamp
		}
		return records[i].LogID > records[j].LogID
	})

	if eventID == nil && len(records) > RecentAttendanceLimit {
		records = records[:RecentAttendanceLimit]
	}
	return records, nil
}

func (m *MemoryStore) CreateEvent(ctx context.Context, name, date string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := int64(len(m.events) + 1)
	m.events = append(m.events, models.Event{EventID: id, EventName: name, EventDate: date})
	return id, nil
}

func (m *MemoryStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	events := append([]models.Event{}, m.events...)
	m.mu.Unlock()

	sort.Slice(events, func(i, j int) bool {
		if events[i].EventDate != events[j].EventDate {
			return events[i].EventDate > events[j].EventDate
		}
		return events[i].EventID > events[j].EventID
	})
	return events, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// findEvent expects m.mu to be held
func (m *MemoryStore) findEvent(id int64) *models.Event {
	for i := range m.events {
		if m.events[i].EventID == id {
			return &m.events[i]
		}
	}
	return nil
}
