// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema and
// the seeded default event. The file lives in t.TempDir and the pool is
// closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "attendance_test.db")
	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := db.CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		DatabaseURL:    "attendance_test.db",
		DatabaseType:   cliparse.DatabaseSQLite,
		DefaultEventID: 1,
	}
}

// CreateTestStudent inserts a student and returns its id
func CreateTestStudent(t *testing.T, conn *sql.DB, rfidID, name, courseYear string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO students (rfid_id, name, course_year)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rfidID, name, courseYear).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}

	return id
}

// CreateTestEvent inserts an event and returns its id
func CreateTestEvent(t *testing.T, conn *sql.DB, name, date string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO events (event_name, event_date)
		VALUES ($1, $2)
		RETURNING event_id
	`, name, date).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

// CreateTestLog inserts an attendance row with an explicit timestamp
func CreateTestLog(t *testing.T, conn *sql.DB, studentID, eventID int64, timestamp string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO attendance_logs (student_id, event_id, scan_timestamp)
		VALUES ($1, $2, $3)
		RETURNING log_id
	`, studentID, eventID, timestamp).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test log: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}

	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
