// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: attendance.db for sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DefaultEventID: Event recorded when a scan carries no event_id (default: 1)
  - MockMode: Serve the API from the in-memory fixture
  - InitOnly: Create the schema, seed the default event, and exit
  - EnvFile: dotenv file loaded before environment lookup (default: .env)

# CLI Flags

	-p      Server port
	-d      Database URL
	-t      Database type
	-event  Default event ID
	-mock   Mock mode
	-init   Initialize schema and exit
	-env    dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	DEFAULT_EVENT_ID → -event
	MOCK_MODE        → -mock

CLI flags take precedence over environment variables, and variables
already present in the environment take precedence over the dotenv file.
A missing dotenv file is ignored.

# Validation

ParseFlags returns an error if:

  - PORT or DEFAULT_EVENT_ID is not a number
  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
  - -init is combined with mock mode
*/
package cliparse
