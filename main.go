package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/db"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/router"
	"github.com/danielhkuo/rfid-attendance/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var st store.Store
	if cfg.MockMode {
		mem := store.NewMemoryStore(time.Now().Format(models.EventDateLayout))
		if err := mem.SeedMockStudents(ctx); err != nil {
			slog.Error("mock seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Running in mock mode", "students", len(store.MockStudents))
		st = mem
	} else {
		// Connect to the database
		dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		seeded, err := db.CreateSchema(ctx, dbConn, cfg.DatabaseType)
		if err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType, "default_event_seeded", seeded)

		if cfg.InitOnly {
			return
		}
		st = store.NewSQLStore(dbConn)
	}

	// Create router
	handler := middleware.CORS(router.NewRouter(st, cfg))

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "default_event_id", cfg.DefaultEventID)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
