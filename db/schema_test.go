// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(context.Background(), cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestCreateSchemaSeedsDefaultEvent(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	seeded, err := CreateSchema(ctx, conn, cliparse.DatabaseSQLite)
	if err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if !seeded {
		t.Error("Expected default event to be seeded on empty database")
	}

	var (
		id   int64
		name string
		date string
	)
	err = conn.QueryRow(`SELECT event_id, event_name, event_date FROM events`).Scan(&id, &name, &date)
	if err != nil {
		t.Fatalf("Failed to query default event: %v", err)
	}

	if id != 1 {
		t.Errorf("Expected default event id 1, got %d", id)
	}
	if name != DefaultEventName {
		t.Errorf("Expected name '%s', got '%s'", DefaultEventName, name)
	}
	if date != time.Now().Format(models.EventDateLayout) {
		t.Errorf("Expected today's date, got '%s'", date)
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seeded, err := CreateSchema(ctx, conn, cliparse.DatabaseSQLite)
		if err != nil {
			t.Fatalf("CreateSchema run %d failed: %v", i+1, err)
		}
		if i > 0 && seeded {
			t.Errorf("Run %d should not seed again", i+1)
		}
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 event, got %d", count)
	}
}

func TestCreateSchemaKeepsExistingEvents(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	if _, err := CreateSchema(ctx, conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`DELETE FROM events`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO events (event_name, event_date) VALUES ('Assembly', '2025-01-01')`); err != nil {
		t.Fatal(err)
	}

	seeded, err := CreateSchema(ctx, conn, cliparse.DatabaseSQLite)
	if err != nil {
		t.Fatal(err)
	}
	if seeded {
		t.Error("Should not seed when an event already exists")
	}

	var count int
	conn.QueryRow(`SELECT COUNT(*) FROM events WHERE event_name = $1`, DefaultEventName).Scan(&count)
	if count != 0 {
		t.Errorf("Expected no default event, found %d", count)
	}
}

func TestCreateSchemaUnsupportedType(t *testing.T) {
	conn := openTestDB(t)

	_, err := CreateSchema(context.Background(), conn, "mysql")
	if err == nil {
		t.Fatal("Expected error for unsupported database type")
	}

	// Nothing should have been created
	var count int
	conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'students'`).Scan(&count)
	if count != 0 {
		t.Error("No tables should exist after a rejected schema run")
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	conn := openTestDB(t)

	if _, err := CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatal(err)
	}

	_, err := conn.Exec(`INSERT INTO attendance_logs (student_id, event_id) VALUES (999, 1)`)
	if err == nil {
		t.Error("Expected foreign key violation for unknown student")
	}
}

func TestScanTimestampDefault(t *testing.T) {
	conn := openTestDB(t)

	if _, err := CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO students (rfid_id, name, course_year) VALUES ('AB12', 'Ann', 'G10')`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO attendance_logs (student_id, event_id) VALUES (1, 1)`); err != nil {
		t.Fatal(err)
	}

	var ts string
	if err := conn.QueryRow(`SELECT scan_timestamp FROM attendance_logs`).Scan(&ts); err != nil {
		t.Fatal(err)
	}
	if _, err := time.Parse(models.TimestampLayout, ts); err != nil {
		t.Errorf("Default timestamp %q does not match layout: %v", ts, err)
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestSQLiteDSN(t *testing.T) {
	testCases := []struct {
		path      string
		wantStart string
	}{
		{"attendance.db", "attendance.db?_pragma="},
		{"file:attendance.db?mode=rwc", "file:attendance.db?mode=rwc&_pragma="},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			dsn := SQLiteDSN(tc.path)
			if !strings.HasPrefix(dsn, tc.wantStart) {
				t.Errorf("Expected prefix '%s', got '%s'", tc.wantStart, dsn)
			}
			if !strings.Contains(dsn, "foreign_keys(1)") {
				t.Errorf("Expected foreign_keys pragma in '%s'", dsn)
			}
		})
	}
}
