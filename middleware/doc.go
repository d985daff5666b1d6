// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /scan", middleware.WithLogging(scanHandler.Scan))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms), and records the latency in the
rfid_http_request_duration_seconds histogram under the route pattern.

An incoming X-Request-ID header is reused; otherwise a UUID is assigned.
Either way it is echoed on the response.

# CORS Middleware

Enable cross-origin requests for dashboards:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and
X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged with every request so scans can be traced to a reader.
*/
package middleware
