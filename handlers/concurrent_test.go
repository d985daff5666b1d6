// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/testutil"
)

// TestConcurrentScans verifies that simultaneous scans from several readers
// each produce exactly one attendance row
func TestConcurrentScans(t *testing.T) {
	db, st := setupTestStore(t)

	cfg := testutil.GetTestConfig()
	scanHandler := NewScanHandler(st, cfg)

	numStudents := 5
	scansPerStudent := 4
	for i := 0; i < numStudents; i++ {
		testutil.CreateTestStudent(t, db, fmt.Sprintf("TAG%02d", i), fmt.Sprintf("Student %d", i), "G10")
	}

	var authorizedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numStudents*scansPerStudent; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			uid := fmt.Sprintf("TAG%02d", idx%numStudents)
			w := httptest.NewRecorder()
			scanHandler.Scan(w, testutil.MakeRequest("POST", "/scan", models.ScanRequest{UID: uid}, nil))

			if w.Code != http.StatusOK {
				t.Errorf("Scan %s returned %d: %s", uid, w.Code, w.Body.String())
				return
			}
			authorizedCount.Add(1)
		}(i)
	}

	wg.Wait()

	expected := numStudents * scansPerStudent
	if int(authorizedCount.Load()) != expected {
		t.Errorf("Expected %d successful scans, got %d", expected, authorizedCount.Load())
	}
	if got := testutil.CountRows(t, db, "attendance_logs"); got != expected {
		t.Errorf("Expected %d attendance rows, got %d", expected, got)
	}
}

// TestConcurrentRegistrationSameTag verifies that racing registrations of one
// tag leave exactly one student behind
func TestConcurrentRegistrationSameTag(t *testing.T) {
	db, st := setupTestStore(t)

	cfg := testutil.GetTestConfig()
	studentHandler := NewStudentHandler(st, cfg)

	numAttempts := 8
	var successCount, duplicateCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.RegisterRequest{RFIDID: "RACE01", Name: fmt.Sprintf("Racer %d", idx), CourseYear: "G11"}
			w := httptest.NewRecorder()
			studentHandler.Register(w, testutil.MakeRequest("POST", "/register", body, nil))

			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusBadRequest:
				duplicateCount.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful registration, got %d", successCount.Load())
	}
	if int(duplicateCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d duplicate rejections, got %d", numAttempts-1, duplicateCount.Load())
	}
	if got := testutil.CountRows(t, db, "students"); got != 1 {
		t.Errorf("Expected 1 student row, got %d", got)
	}
}
