// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/models"
)

// DefaultEventName is the name of the event seeded into an empty events table
const DefaultEventName = "Default Event"

// CreateSchema creates all tables needed for the application and seeds the
// default event when no event exists yet. Everything runs in one
// transaction, so a failure leaves the database untouched.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dbType string) (seeded bool, err error) {
	statements, err := schemaFor(dbType)
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create schema: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count events: %w", err)
	}

	if count == 0 {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO events (event_name, event_date) VALUES ($1, $2)
		`, DefaultEventName, time.Now().Format(models.EventDateLayout))
		if err != nil {
			return false, fmt.Errorf("failed to seed default event: %w", err)
		}
		seeded = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit schema: %w", err)
	}

	return seeded, nil
}

func schemaFor(dbType string) ([]string, error) {
	switch dbType {
	case cliparse.DatabaseSQLite:
		return sqliteSchema, nil
	case cliparse.DatabasePostgres:
		return postgresSchema, nil
	}
	return nil, fmt.Errorf("unsupported database type %q", dbType)
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		rfid_id TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		course_year TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_name TEXT NOT NULL,
		event_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_logs (
		log_id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id),
		event_id INTEGER NOT NULL REFERENCES events(event_id),
		scan_timestamp TEXT DEFAULT (strftime('%Y-%m-%dT%H:%M:%f000', 'now'))
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		rfid_id TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		course_year TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id BIGSERIAL PRIMARY KEY,
		event_name TEXT NOT NULL,
		event_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_logs (
		log_id BIGSERIAL PRIMARY KEY,
		student_id BIGINT NOT NULL REFERENCES students(id),
		event_id BIGINT NOT NULL REFERENCES events(event_id),
		scan_timestamp TEXT DEFAULT to_char(NOW() AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS.US')
	)`,
}
