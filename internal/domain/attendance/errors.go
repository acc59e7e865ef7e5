package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
