// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus collectors for scans, registrations
// and request latency.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Scan results
const (
	ScanAuthorized   = "authorized"
	ScanUnauthorized = "unauthorized"
	ScanError        = "error"
)

// Registration results
const (
	RegistrationCreated   = "created"
	RegistrationDuplicate = "duplicate"
	RegistrationError     = "error"
)

var (
	scans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rfid_scans_total",
		Help: "RFID scans processed, by result.",
	}, []string{"result"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rfid_registrations_total",
		Help: "Student registrations, by result.",
	}, []string{"result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rfid_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func ObserveScan(result string) {
	scans.WithLabelValues(result).Inc()
}

func ObserveRegistration(result string) {
	registrations.WithLabelValues(result).Inc()
}

func ObserveRequest(method, path string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
