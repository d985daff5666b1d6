// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/metrics"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/store"
)

type ScanHandler struct {
	store store.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewScanHandler(st store.Store, cfg cliparse.Config) *ScanHandler {
	return &ScanHandler{store: st, cfg: cfg, now: time.Now}
}

// Scan handles POST /scan
// Logs attendance for a registered tag; unknown tags are answered as
// unauthorized without writing anything.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.UID) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "uid is required")
		return
	}

	eventID := h.cfg.DefaultEventID
	if req.EventID != nil {
		eventID = *req.EventID
	}

	student, err := h.store.ScanTag(r.Context(), req.UID, eventID, h.now())
	if err != nil {
		metrics.ObserveScan(metrics.ScanError)
		slog.Error("failed to process scan", "uid", req.UID, "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if student == nil {
		metrics.ObserveScan(metrics.ScanUnauthorized)
		slog.Info("scan denied", "uid", req.UID, "event_id", eventID)
		middleware.JSONResponse(w, http.StatusOK, models.ScanResponse{
			Authorized: false,
			UID:        req.UID,
		})
		return
	}

	metrics.ObserveScan(metrics.ScanAuthorized)
	slog.Info("scan authorized", "student_id", student.ID, "event_id", eventID)

	middleware.JSONResponse(w, http.StatusOK, models.ScanResponse{
		Authorized: true,
		Name:       student.Name,
	})
}
