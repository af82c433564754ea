package pattern

import (
	"context"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

type Repository interface {
	// Upsert increments the frequency counter and bumps last_used_at for the
	// (employee, start, end) key, inserting the row on first use. Runs inside
	// the shift-creation transaction.
	Upsert(ctx context.Context, employeeID string, start, end timeutil.Clock) error

	// GetByEmployeeID returns the employee's patterns ordered by frequency
	// descending, then last_used_at descending.
	GetByEmployeeID(ctx context.Context, employeeID string, limit int) ([]Pattern, error)

	// DeleteStale removes low-value rows: frequency at or below maxFrequency
	// and last used before cutoff. Returns the number of rows removed.
	DeleteStale(ctx context.Context, maxFrequency int, cutoff time.Time) (int64, error)
}
