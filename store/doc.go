// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data layer behind the HTTP handlers.

# Contract

Handlers depend only on the Store interface:

	student, err := st.ScanTag(ctx, uid, eventID, time.Now())
	if student == nil {
		// unknown tag, nothing was logged
	}

Two implementations satisfy it:

  - SQLStore: database/sql over SQLite or PostgreSQL
  - MemoryStore: mutex-guarded in-process data, used as a test double
    and for mock mode (SeedMockStudents loads the fixture cards)

# Transactions

SQLStore opens one transaction per write (scan, registration, event
creation) and defers Rollback, so the pooled connection is released on
every return path. Reads use a single pooled query.

# Errors

  - ErrDuplicateRFID: the tag is already registered
  - ErrUnknownEvent: MemoryStore rejected a scan for a missing event
    (SQLStore relies on the foreign key instead and returns the driver error)

Any other error is a backend failure.

# Ordering

  - students: name ascending
  - events: event_date descending
  - attendance: scan_timestamp descending, log_id breaks ties; the
    unfiltered listing stops at RecentAttendanceLimit rows
*/
package store
