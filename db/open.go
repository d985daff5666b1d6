// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/rfid-attendance/cliparse"
)

// sqlitePragmas are applied to every pooled SQLite connection.
// foreign_keys is off by default in SQLite and must be set per connection.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
	"_pragma=journal_mode(WAL)",
	"_txlock=immediate",
}

// Open returns a verified connection pool for the given database type.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	var (
		driver string
		dsn    string
	)

	switch dbType {
	case cliparse.DatabaseSQLite:
		driver, dsn = "sqlite", SQLiteDSN(url)
	case cliparse.DatabasePostgres:
		driver, dsn = "postgres", url
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	if dbType == cliparse.DatabasePostgres {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(time.Hour)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// SQLiteDSN appends the connection pragmas to a SQLite file path or URI
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(sqlitePragmas, "&")
}
