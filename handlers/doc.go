// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the RFID attendance API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ScanHandler: Tag scans from card readers
  - StudentHandler: Registration and student listing
  - AttendanceHandler: Attendance history
  - EventHandler: Event creation and listing
  - InfoHandler: Service descriptor and health check

Handlers are created via constructor functions that accept a store.Store
and Config:

	scanHandler := handlers.NewScanHandler(st, cfg)

# Scanning

	POST /scan {"uid": "AB12", "event_id": 2}

A known tag gets {"authorized": true, "name": ...} and one attendance log
for the event (the configured default event when event_id is absent). An
unknown tag gets {"authorized": false, "uid": ...} and nothing is written.
Repeated scans are all logged.

# Errors

Validation failures answer 400 and store failures answer 500, both with
an {"error", "message"} body.
*/
package handlers
