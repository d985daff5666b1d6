// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the RFID attendance API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

The store may be a *store.SQLStore or, in mock mode, a *store.MemoryStore.

# Endpoints

Operational:

	GET /health   - Store reachability
	GET /metrics  - Prometheus metrics

Device:

	POST /scan - Authorize a tag and log attendance

Students:

	POST /register - Register a student
	GET  /students - List students by name

Attendance:

	GET /attendance?event_id= - Attendance history, newest first

Events:

	POST /events - Create event
	GET  /events - List events, newest date first

Root:

	GET / - Service descriptor

Every API route is wrapped with middleware.WithLogging.
*/
package router
