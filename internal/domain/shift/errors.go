package shift

import (
	"errors"
	"fmt"
)

var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrShiftNotInCompany   = errors.New("shift does not belong to your company")
	ErrInvalidTimeFormat   = errors.New("time must match HH:mm (24-hour, UTC)")
	ErrOvernightNotAllowed = errors.New("end time must be after start time; overnight shifts are not allowed")
	ErrShiftOverlap        = errors.New("shift overlaps an existing shift")
	ErrDuplicateShift      = errors.New("an identical shift already exists for this employee and date")
	ErrInvalidStrategy     = errors.New("conflict_resolution must be one of: fail, skip, overwrite")
	ErrInvalidRequestData  = errors.New("invalid request data")
)

// RuleViolationError carries the blocking business-rule findings for a
// rejected create or update.
type RuleViolationError struct {
	Violations []Violation
}

func (e *RuleViolationError) Error() string {
	if len(e.Violations) == 1 {
		return "business rule violated: " + e.Violations[0].Message
	}
	return fmt.Sprintf("%d business rules violated", len(e.Violations))
}

// CandidateConflict ties a conflicting candidate back to its analysis,
// surfaced as metadata on fail-strategy aborts and skip reports.
type CandidateConflict struct {
	EmployeeID string         `json:"employee_id"`
	Date       string         `json:"date"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	Reason     string         `json:"reason"`
	Report     ConflictReport `json:"report"`
	Violations []Violation    `json:"violations,omitempty"`
}

// ConflictsDetectedError aborts a bulk or duplicate operation under the fail
// strategy, listing every candidate rejected for a collision or a blocking
// rule violation.
type ConflictsDetectedError struct {
	Conflicts []CandidateConflict
}

func (e *ConflictsDetectedError) Error() string {
	return fmt.Sprintf("conflicts detected for %d candidate shift(s)", len(e.Conflicts))
}
