// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/metrics"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/store"
)

type StudentHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewStudentHandler(st store.Store, cfg cliparse.Config) *StudentHandler {
	return &StudentHandler{store: st, cfg: cfg}
}

// Register handles POST /register
func (h *StudentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch {
	case strings.TrimSpace(req.RFIDID) == "":
		middleware.ErrorResponse(w, http.StatusBadRequest, "rfid_id is required")
		return
	case strings.TrimSpace(req.Name) == "":
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	case strings.TrimSpace(req.CourseYear) == "":
		middleware.ErrorResponse(w, http.StatusBadRequest, "course_year is required")
		return
	}

	err := h.store.RegisterStudent(r.Context(), req)
	if errors.Is(err, store.ErrDuplicateRFID) {
		metrics.ObserveRegistration(metrics.RegistrationDuplicate)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		metrics.ObserveRegistration(metrics.RegistrationError)
		slog.Error("failed to register student", "rfid_id", req.RFIDID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.ObserveRegistration(metrics.RegistrationCreated)
	slog.Info("student registered", "rfid_id", req.RFIDID)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:  models.StatusSuccess,
		Message: "Student registered",
	})
}

// List handles GET /students
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.store.ListStudents(r.Context())
	if err != nil {
		slog.Error("failed to list students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, students)
}
