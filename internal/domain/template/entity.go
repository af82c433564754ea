package template

import (
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

// Template is a named, reusable (start, end) time pair owned by one company.
// UsageCount is incremented whenever the template seeds a bulk creation.
type Template struct {
	ID         string
	CompanyID  string
	Name       string
	StartTime  timeutil.Clock
	EndTime    timeutil.Clock
	UsageCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
