// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - ScanRequest: uid, event_id (optional)
  - RegisterRequest: rfid_id, name, course_year
  - CreateEventRequest: event_name, event_date

# Response Types

  - ScanResponse: authorized, name (authorized) or uid (unauthorized)
  - StatusResponse: status, message
  - CreateEventResponse: status, event_id, message
  - ServiceInfo: root descriptor
  - ErrorResponse: error, message

# Domain Types

  - Student: a registered card holder
  - Event: a named, dated occasion
  - AttendanceRecord: a log row joined with student and event names

# Timestamps

Scan timestamps are stored as text in TimestampLayout (UTC, microsecond
precision). The fixed width keeps ORDER BY scan_timestamp chronological.
*/
package models
