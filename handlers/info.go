// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/store"
)

// APIVersion is reported by the root descriptor
const APIVersion = "1.0.0"

var endpoints = []string{
	"POST /scan - Scan RFID card",
	"POST /register - Register new student",
	"GET /students - Get all students",
	"GET /attendance - Get attendance logs",
	"POST /events - Create event",
	"GET /events - Get all events",
}

type InfoHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewInfoHandler(st store.Store, cfg cliparse.Config) *InfoHandler {
	return &InfoHandler{store: st, cfg: cfg}
}

// Root handles GET /
func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	message := "RFID Attendance API running"
	if h.cfg.MockMode {
		message = "Mock RFID Attendance API running locally"
	}

	middleware.JSONResponse(w, http.StatusOK, models.ServiceInfo{
		Message:   message,
		Version:   APIVersion,
		Endpoints: endpoints,
	})
}

// Health handles GET /health
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("UNAVAILABLE"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
