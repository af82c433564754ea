package shift

type ConflictType string

const (
	// ConflictDuplicate: identical start and end to an existing shift.
	ConflictDuplicate ConflictType = "duplicate"
	// ConflictOverlap: ranges intersect but are not identical.
	ConflictOverlap ConflictType = "overlap"
	// ConflictAdjacent: gap between the ranges is below the break-review
	// threshold.
	ConflictAdjacent ConflictType = "adjacent"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ConflictingShift annotates an existing shift that collides with a
// candidate.
type ConflictingShift struct {
	ShiftID    string       `json:"shift_id"`
	EmployeeID string       `json:"employee_id"`
	Date       string       `json:"date"`
	StartTime  string       `json:"start_time"`
	EndTime    string       `json:"end_time"`
	Type       ConflictType `json:"type"`
	Severity   Severity     `json:"severity"`
}

// ConflictReport is the analyzer output for one candidate.
type ConflictReport struct {
	HasConflicts bool               `json:"has_conflicts"`
	Type         ConflictType       `json:"type,omitempty"`
	Severity     Severity           `json:"severity,omitempty"`
	Conflicts    []ConflictingShift `json:"conflicts,omitempty"`
	Suggestions  []string           `json:"suggestions,omitempty"`
}

// Violation is one business-rule finding. Only error severity blocks the
// operation; warnings are informational.
type Violation struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

const (
	RuleOvernight   = "overnight_not_allowed"
	RuleDailyHours  = "max_daily_hours"
	RuleWeeklyHours = "max_weekly_hours"
	RuleMinBreak    = "min_break_hours"
)

const (
	ViolationError   Severity = "error"
	ViolationWarning Severity = "warning"
)

// RuleResult aggregates the business-rule findings for one candidate.
type RuleResult struct {
	IsValid    bool        `json:"is_valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// Blocking returns only the error-severity violations.
func (r RuleResult) Blocking() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == ViolationError {
			out = append(out, v)
		}
	}
	return out
}
