// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/handlers"
	"github.com/danielhkuo/rfid-attendance/metrics"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scanHandler := handlers.NewScanHandler(st, cfg)
	studentHandler := handlers.NewStudentHandler(st, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(st, cfg)
	eventHandler := handlers.NewEventHandler(st, cfg)
	infoHandler := handlers.NewInfoHandler(st, cfg)

	// Operational endpoints
	mux.HandleFunc("GET /health", infoHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Device-facing
	mux.HandleFunc("POST /scan", middleware.WithLogging(scanHandler.Scan))

	// Students
	mux.HandleFunc("POST /register", middleware.WithLogging(studentHandler.Register))
	mux.HandleFunc("GET /students", middleware.WithLogging(studentHandler.List))

	// Attendance history
	mux.HandleFunc("GET /attendance", middleware.WithLogging(attendanceHandler.List))

	// Events
	mux.HandleFunc("POST /events", middleware.WithLogging(eventHandler.Create))
	mux.HandleFunc("GET /events", middleware.WithLogging(eventHandler.List))

	// Root descriptor (exact path only)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(infoHandler.Root))

	return mux
}
