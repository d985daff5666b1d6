package models

// TimestampLayout is the text layout of attendance_logs.scan_timestamp.
// Fixed width so that string ordering matches time ordering.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// EventDateLayout is the layout used for the seeded default event.
const EventDateLayout = "2006-01-02"

// Response status values
const (
	StatusSuccess = "success"
)

// Request types

type ScanRequest struct {
	UID     string `json:"uid"`
	EventID *int64 `json:"event_id,omitempty"`
}

type RegisterRequest struct {
	RFIDID     string `json:"rfid_id"`
	Name       string `json:"name"`
	CourseYear string `json:"course_year"`
}

type CreateEventRequest struct {
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
}

// Response types

// ScanResponse carries name when authorized, uid when not
type ScanResponse struct {
	Authorized bool   `json:"authorized"`
	Name       string `json:"name,omitempty"`
	UID        string `json:"uid,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	EventID int64  `json:"event_id"`
	Message string `json:"message"`
}

type ServiceInfo struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Domain types

type Student struct {
	ID         int64  `json:"id"`
	RFIDID     string `json:"rfid_id"`
	Name       string `json:"name"`
	CourseYear string `json:"course_year"`
}

type Event struct {
	EventID   int64  `json:"event_id"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
}

// AttendanceRecord is an attendance_logs row joined with its student and event
type AttendanceRecord struct {
	LogID         int64  `json:"log_id"`
	StudentID     int64  `json:"student_id"`
	EventID       int64  `json:"event_id"`
	ScanTimestamp string `json:"scan_timestamp"`
	Name          string `json:"name"`
	CourseYear    string `json:"course_year"`
	EventName     string `json:"event_name"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
