package pattern

import (
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

// Pattern records how often an employee has worked a particular (start, end)
// time pair. Created on first use, incremented on repeat use, removed only by
// the maintenance sweep.
type Pattern struct {
	ID         string
	EmployeeID string
	StartTime  timeutil.Clock
	EndTime    timeutil.Clock
	Frequency  int
	LastUsedAt time.Time
	CreatedAt  time.Time
}
