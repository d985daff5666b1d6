// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/store"
)

type AttendanceHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAttendanceHandler(st store.Store, cfg cliparse.Config) *AttendanceHandler {
	return &AttendanceHandler{store: st, cfg: cfg}
}

// List handles GET /attendance
// With ?event_id every log for that event is returned; without it only
// the most recent logs across all events.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	var eventID *int64
	if raw := r.URL.Query().Get("event_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "event_id must be an integer")
			return
		}
		eventID = &id
	}

	records, err := h.store.ListAttendance(r.Context(), eventID)
	if err != nil {
		slog.Error("failed to list attendance", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}
