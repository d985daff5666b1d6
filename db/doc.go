// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connection setup and database schema creation.

# Connecting

Open selects the driver from the configured database type and pings the
pool before returning it:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

SQLite uses modernc.org/sqlite (pure Go). Every pooled connection gets
foreign key enforcement, a busy timeout, WAL journaling, and immediate
write transactions. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	seeded, err := db.CreateSchema(ctx, conn, cfg.DatabaseType)

Safe to call multiple times - uses IF NOT EXISTS for all tables. When the
events table is empty, a "Default Event" dated today is inserted and
seeded is true. The whole run is one transaction.

# Tables

  - students: id, rfid_id (unique), name, course_year
  - events: event_id, event_name, event_date
  - attendance_logs: log_id, student_id, event_id, scan_timestamp

# Relationships

	students 1──* attendance_logs
	events   1──* attendance_logs

Foreign keys are enforced by the database; rows are never deleted.
*/
package db
