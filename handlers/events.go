// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/rfid-attendance/cliparse"
	"github.com/danielhkuo/rfid-attendance/middleware"
	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/store"
)

type EventHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewEventHandler(st store.Store, cfg cliparse.Config) *EventHandler {
	return &EventHandler{store: st, cfg: cfg}
}

// Create handles POST /events
// event_name and event_date may come from the query string, a JSON body,
// or a form body.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := parseEventParams(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.EventName == "" || req.EventDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_name and event_date are required")
		return
	}

	eventID, err := h.store.CreateEvent(r.Context(), req.EventName, req.EventDate)
	if err != nil {
		slog.Error("failed to create event", "event_name", req.EventName, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("event created", "event_id", eventID, "event_name", req.EventName)

	middleware.JSONResponse(w, http.StatusOK, models.CreateEventResponse{
		Status:  models.StatusSuccess,
		EventID: eventID,
		Message: "Event created",
	})
}

// List handles GET /events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// parseEventParams prefers query parameters and fills the gaps from the body
func parseEventParams(r *http.Request) (models.CreateEventRequest, error) {
	query := r.URL.Query()
	req := models.CreateEventRequest{
		EventName: strings.TrimSpace(query.Get("event_name")),
		EventDate: strings.TrimSpace(query.Get("event_date")),
	}
	if req.EventName != "" && req.EventDate != "" {
		return req, nil
	}

	var body models.CreateEventRequest
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if err := middleware.ParseJSONBody(r, &body); err != nil {
			return req, err
		}
	case contentType != "":
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		body.EventName = r.PostForm.Get("event_name")
		body.EventDate = r.PostForm.Get("event_date")
	}

	if req.EventName == "" {
		req.EventName = strings.TrimSpace(body.EventName)
	}
	if req.EventDate == "" {
		req.EventDate = strings.TrimSpace(body.EventDate)
	}
	return req, nil
}
