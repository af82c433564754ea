package shift

import (
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

// Shift is a single scheduled work interval for one employee on one calendar
// date. Date carries no time component; start and end are wall-clock UTC at
// HH:mm granularity. Rows are soft-deleted, never removed.
type Shift struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	StartTime  timeutil.Clock
	EndTime    timeutil.Clock
	Note       *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusConfirmed),
}

// Candidate is a shift that does not exist yet: the unit the conflict
// analyzer, rule validator and bulk planner all operate on.
type Candidate struct {
	EmployeeID string
	Date       time.Time
	StartTime  timeutil.Clock
	EndTime    timeutil.Clock
}

// Key identifies the candidate's (employee, date) slot, used to index
// pre-fetched existing shifts during bulk planning.
func (c Candidate) Key() string {
	return c.EmployeeID + "|" + timeutil.FormatDate(c.Date)
}
