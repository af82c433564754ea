package shift

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID resolves a shift without a company filter so the service can
	// distinguish a cross-tenant access attempt from a missing row.
	GetByID(ctx context.Context, id string) (Shift, error)

	GetByIDs(ctx context.Context, ids []string, companyID string) ([]Shift, error)

	// GetByEmployeeAndDate returns the employee's non-deleted shifts on one
	// date: the candidate set for conflict analysis.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Shift, error)

	// GetByEmployeeDateRange returns non-deleted shifts with date in
	// [from, to], feeding the adjacent-day and weekly-hour rules.
	GetByEmployeeDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]Shift, error)

	// GetForSlots returns every non-deleted shift for the given employees on
	// the given dates, used as the bulk pre-check index.
	GetForSlots(ctx context.Context, employeeIDs []string, dates []time.Time) ([]Shift, error)

	// GetRecentDistinct returns the employee's most recent shifts with
	// distinct (start, end) pairs, newest first.
	GetRecentDistinct(ctx context.Context, employeeID string, limit int) ([]Shift, error)

	List(ctx context.Context, companyID string, f Filter) ([]Shift, int64, error)
	Update(ctx context.Context, req UpdateShiftRequest) (Shift, error)
	UpdateStatus(ctx context.Context, id, companyID string, status Status) (Shift, error)
	SoftDelete(ctx context.Context, id, companyID string) error
	SoftDeleteMany(ctx context.Context, ids []string, companyID string) error
}

type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context, f Filter) (ListShiftsResponse, error)
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	Confirm(ctx context.Context, id string) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error

	// ValidateCandidate runs the full conflict and rule analysis without
	// writing anything.
	ValidateCandidate(ctx context.Context, req CreateShiftRequest) (ValidationReport, error)

	BulkCreate(ctx context.Context, req BulkCreateRequest) (BulkResult, error)
	Duplicate(ctx context.Context, req DuplicateRequest) (BulkResult, error)
	Suggestions(ctx context.Context, employeeID string, limit int) ([]Suggestion, error)

	// CleanupPatterns removes stale pattern rows and returns the count.
	CleanupPatterns(ctx context.Context) (int64, error)
}
