package attendance

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out")
	ErrNoCheckInRecord   = errors.New("no check-in record found")
	ErrInvalidTransition = errors.New("invalid attendance edit")

	// ErrDuplicateRecord is returned by a RecordStore when an insert hits the
	// (employeeId, date) uniqueness constraint.
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
)

// SweepFailure is one employee the sweep could not resolve.
type SweepFailure struct {
	EmployeeCode string `json:"employeeCode"`
	Reason       string `json:"reason"`
}

// PartialSweepError aggregates per-employee sweep failures. The sweep never
// aborts on a single employee; callers log this and move on.
type PartialSweepError struct {
	Date     string
	Failures []SweepFailure
}

func (e *PartialSweepError) Error() string {
	codes := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		codes = append(codes, f.EmployeeCode)
	}
	return fmt.Sprintf("sweep for %s failed for %d employee(s): %s",
		e.Date, len(e.Failures), strings.Join(codes, ", "))
}
