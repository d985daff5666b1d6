// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the RFID attendance server.

Card readers post tag UIDs to the server, which answers whether the tag
belongs to a registered student and records an attendance log for the
current event. Operators register students, create events and browse
attendance history through the same JSON API.

# Starting the Server

With no configuration the server uses a SQLite file in the working
directory:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8000 -d attendance.db -event 1

Settings are also read from a .env file (see -env).

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string (default: attendance.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DEFAULT_EVENT_ID (-event): Event for scans that name none (default: 1)
  - MOCK_MODE (-mock): Serve from in-memory fixture data
  - -init: Create the schema and exit

# Architecture

  - handlers: HTTP request handlers (scan, students, attendance, events, info)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: Persistence behind the Store interface (SQL and in-memory)
  - db: Connection setup and schema creation
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
