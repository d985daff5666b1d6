package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// DefaultSQLitePath matches the file the device deployment has always used
const DefaultSQLitePath = "attendance.db"

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	DefaultEventID int64
	MockMode       bool
	InitOnly       bool
	EnvFile        string
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("rfid-attendance", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Behaviour
	fs.Int64Var(&cfg.DefaultEventID, "event", 0, "Event ID used when a scan omits event_id")
	fs.BoolVar(&cfg.MockMode, "mock", false, "Serve from the in-memory fixture instead of a database")
	fs.BoolVar(&cfg.InitOnly, "init", false, "Initialize the database schema and exit")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "dotenv file to load if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLitePath
	}

	if cfg.DefaultEventID == 0 {
		if idStr := os.Getenv("DEFAULT_EVENT_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid DEFAULT_EVENT_ID env variable")
			}
			cfg.DefaultEventID = id
		} else {
			cfg.DefaultEventID = 1
		}
	}
	if cfg.DefaultEventID < 1 {
		return Config{}, errors.New("default event ID must be positive")
	}

	if !cfg.MockMode {
		if v := os.Getenv("MOCK_MODE"); v != "" {
			mock, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid MOCK_MODE env variable")
			}
			cfg.MockMode = mock
		}
	}

	if cfg.MockMode && cfg.InitOnly {
		return Config{}, errors.New("-init cannot be combined with mock mode")
	}

	return cfg, nil
}

// loadEnvFile loads path into the environment without overriding values
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
