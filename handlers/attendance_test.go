// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/rfid-attendance/models"
	"github.com/danielhkuo/rfid-attendance/store"
	"github.com/danielhkuo/rfid-attendance/testutil"
)

func getAttendance(t *testing.T, handler *AttendanceHandler, path string) (*httptest.ResponseRecorder, []models.AttendanceRecord) {
	t.Helper()

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", path, nil))

	var records []models.AttendanceRecord
	if w.Code == http.StatusOK {
		testutil.AssertJSON(t, w, &records)
	}
	return w, records
}

func assertDescending(t *testing.T, records []models.AttendanceRecord) {
	t.Helper()
	for i := 1; i < len(records); i++ {
		if records[i-1].ScanTimestamp < records[i].ScanTimestamp {
			t.Fatalf("Rows not newest first at %d: %s before %s",
				i, records[i-1].ScanTimestamp, records[i].ScanTimestamp)
		}
	}
}

func TestListAttendance(t *testing.T) {
	db, st := setupTestStore(t)
	handler := NewAttendanceHandler(st, testutil.GetTestConfig())

	ann := testutil.CreateTestStudent(t, db, "AB12", "Ann", "G10")
	bob := testutil.CreateTestStudent(t, db, "CD34", "Bob", "G11")
	lab := testutil.CreateTestEvent(t, db, "Lab", "2025-03-02")

	testutil.CreateTestLog(t, db, ann, 1, "2025-03-01T08:00:00.000000")
	testutil.CreateTestLog(t, db, bob, lab, "2025-03-02T09:00:00.000000")
	testutil.CreateTestLog(t, db, ann, lab, "2025-03-02T09:05:00.000000")
	testutil.CreateTestLog(t, db, bob, 1, "2025-03-01T07:55:00.000000")

	t.Run("all events", func(t *testing.T) {
		w, records := getAttendance(t, handler, "/attendance")
		testutil.AssertStatus(t, w, http.StatusOK)

		if len(records) != 4 {
			t.Fatalf("Expected 4 rows, got %d", len(records))
		}
		assertDescending(t, records)

		newest := records[0]
		if newest.Name != "Ann" || newest.EventName != "Lab" || newest.CourseYear != "G10" {
			t.Errorf("Unexpected newest row: %+v", newest)
		}
		if newest.StudentID != ann || newest.EventID != lab || newest.LogID == 0 {
			t.Errorf("Unexpected ids on newest row: %+v", newest)
		}
	})

	t.Run("filtered by event", func(t *testing.T) {
		w, records := getAttendance(t, handler, fmt.Sprintf("/attendance?event_id=%d", lab))
		testutil.AssertStatus(t, w, http.StatusOK)

		if len(records) != 2 {
			t.Fatalf("Expected 2 rows for Lab, got %d", len(records))
		}
		for _, rec := range records {
			if rec.EventID != lab {
				t.Errorf("Row from event %d leaked into filter", rec.EventID)
			}
		}
		assertDescending(t, records)
	})

	t.Run("event without logs", func(t *testing.T) {
		w, records := getAttendance(t, handler, "/attendance?event_id=999")
		testutil.AssertStatus(t, w, http.StatusOK)
		if len(records) != 0 {
			t.Errorf("Expected no rows, got %d", len(records))
		}
	})

	t.Run("invalid event id", func(t *testing.T) {
		w, _ := getAttendance(t, handler, "/attendance?event_id=abc")
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestListAttendanceLimit(t *testing.T) {
	db, st := setupTestStore(t)
	handler := NewAttendanceHandler(st, testutil.GetTestConfig())

	ann := testutil.CreateTestStudent(t, db, "AB12", "Ann", "G10")
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	total := store.RecentAttendanceLimit + 25
	for i := 0; i < total; i++ {
		testutil.CreateTestLog(t, db, ann, 1, store.FormatTimestamp(base.Add(time.Duration(i)*time.Second)))
	}

	w, recent := getAttendance(t, handler, "/attendance")
	testutil.AssertStatus(t, w, http.StatusOK)
	if len(recent) != store.RecentAttendanceLimit {
		t.Fatalf("Expected unfiltered listing capped at %d, got %d", store.RecentAttendanceLimit, len(recent))
	}
	assertDescending(t, recent)

	newest := store.FormatTimestamp(base.Add(time.Duration(total-1) * time.Second))
	if recent[0].ScanTimestamp != newest {
		t.Errorf("Expected newest %s first, got %s", newest, recent[0].ScanTimestamp)
	}

	w, all := getAttendance(t, handler, "/attendance?event_id=1")
	testutil.AssertStatus(t, w, http.StatusOK)
	if len(all) != total {
		t.Errorf("Expected filtered listing to be unbounded (%d), got %d", total, len(all))
	}
}

func TestListAttendanceStoreFailure(t *testing.T) {
	handler := NewAttendanceHandler(failingStore{}, testutil.GetTestConfig())

	w, _ := getAttendance(t, handler, "/attendance")
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
