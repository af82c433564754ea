package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

// Shift times live in TIME columns; they cross the repository boundary as
// HH:mm strings and are parsed into timeutil.Clock on the way out.
const shiftColumns = `
	id, employee_id, company_id, date,
	to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time,
	note, status, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	var startStr, endStr string

	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CompanyID, &s.Date,
		&startStr, &endStr,
		&s.Note, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	if s.StartTime, err = timeutil.ParseClock(startStr); err != nil {
		return shift.Shift{}, fmt.Errorf("invalid stored start_time %q: %w", startStr, err)
	}
	if s.EndTime, err = timeutil.ParseClock(endStr); err != nil {
		return shift.Shift{}, fmt.Errorf("invalid stored end_time %q: %w", endStr, err)
	}
	return s, nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	defer rows.Close()

	var result []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}
	return result, nil
}

// Create implements shift.Repository. The partial unique index on
// (employee_id, date, start_time, end_time) WHERE deleted_at IS NULL is the
// only serialization point against concurrent writers; its 23505 is mapped
// to ErrDuplicateShift so callers see the same error the pre-check raises.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, employee_id, company_id, date, start_time, end_time,
			note, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4::time, $5::time, $6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.CompanyID, s.Date,
		s.StartTime.String(), s.EndTime.String(),
		s.Note, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return shift.Shift{}, shift.ErrDuplicateShift
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.Repository. Unscoped: the service compares
// CompanyID against the requester's tenant.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1 AND deleted_at IS NULL`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// GetByIDs implements shift.Repository.
func (r *shiftRepositoryImpl) GetByIDs(ctx context.Context, ids []string, companyID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = ANY($1) AND company_id = $2 AND deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts by ids: %w", err)
	}
	return collectShifts(rows)
}

// GetByEmployeeAndDate implements shift.Repository.
func (r *shiftRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND date = $2::date AND deleted_at IS NULL
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts for date: %w", err)
	}
	return collectShifts(rows)
}

// GetByEmployeeDateRange implements shift.Repository.
func (r *shiftRepositoryImpl) GetByEmployeeDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
			AND date BETWEEN $2::date AND $3::date
			AND deleted_at IS NULL
		ORDER BY date ASC, start_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts for range: %w", err)
	}
	return collectShifts(rows)
}

// GetForSlots implements shift.Repository.
func (r *shiftRepositoryImpl) GetForSlots(ctx context.Context, employeeIDs []string, dates []time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = ANY($1)
			AND date = ANY($2::date[])
			AND deleted_at IS NULL
		ORDER BY employee_id, date, start_time
	`

	rows, err := q.Query(ctx, query, employeeIDs, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts for slots: %w", err)
	}
	return collectShifts(rows)
}

// GetRecentDistinct implements shift.Repository. DISTINCT ON keeps the most
// recent row per (start_time, end_time) pair.
func (r *shiftRepositoryImpl) GetRecentDistinct(ctx context.Context, employeeID string, limit int) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, start_time, end_time,
			note, status, created_at, updated_at
		FROM (
			SELECT DISTINCT ON (start_time, end_time)
				id, employee_id, company_id, date,
				to_char(start_time, 'HH24:MI') AS start_time,
				to_char(end_time, 'HH24:MI') AS end_time,
				note, status, created_at, updated_at
			FROM shifts
			WHERE employee_id = $1 AND deleted_at IS NULL
			ORDER BY start_time, end_time, date DESC
		) recent
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent shifts: %w", err)
	}
	return collectShifts(rows)
}

// List implements shift.Repository.
func (r *shiftRepositoryImpl) List(ctx context.Context, companyID string, f shift.Filter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "company_id = $1 AND deleted_at IS NULL"
	args := []interface{}{companyID}
	argIdx := 2

	if f.EmployeeID != nil && *f.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *f.EmployeeID)
		argIdx++
	}
	if f.DateFrom != nil && *f.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d::date", argIdx)
		args = append(args, *f.DateFrom)
		argIdx++
	}
	if f.DateTo != nil && *f.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d::date", argIdx)
		args = append(args, *f.DateTo)
		argIdx++
	}
	if f.Status != nil && *f.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *f.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM shifts WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	limit := f.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (f.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM shifts
		WHERE %s
		ORDER BY date ASC, start_time ASC
		LIMIT $%d OFFSET $%d
	`, shiftColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shifts: %w", err)
	}

	result, err := collectShifts(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// Update implements shift.Repository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Date != nil {
		updates = append(updates, fmt.Sprintf("date = $%d::date", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.StartTime != nil {
		updates = append(updates, fmt.Sprintf("start_time = $%d::time", argIdx))
		args = append(args, *req.StartTime)
		argIdx++
	}
	if req.EndTime != nil {
		updates = append(updates, fmt.Sprintf("end_time = $%d::time", argIdx))
		args = append(args, *req.EndTime)
		argIdx++
	}
	if req.Note != nil {
		updates = append(updates, fmt.Sprintf("note = $%d", argIdx))
		args = append(args, *req.Note)
		argIdx++
	}

	if len(updates) == 0 {
		return shift.Shift{}, shift.ErrInvalidRequestData
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)
	idIdx := argIdx
	argIdx++
	args = append(args, req.CompanyID)

	query := "UPDATE shifts SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING ", idIdx, argIdx) +
		shiftColumns

	s, err := scanShift(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Shift{}, shift.ErrDuplicateShift
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return s, nil
}

// UpdateStatus implements shift.Repository.
func (r *shiftRepositoryImpl) UpdateStatus(ctx context.Context, id, companyID string, status shift.Status) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
		RETURNING ` + shiftColumns

	s, err := scanShift(q.QueryRow(ctx, query, status, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift status: %w", err)
	}

	return s, nil
}

// SoftDelete implements shift.Repository.
func (r *shiftRepositoryImpl) SoftDelete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET deleted_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to soft delete shift: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// SoftDeleteMany implements shift.Repository.
func (r *shiftRepositoryImpl) SoftDeleteMany(ctx context.Context, ids []string, companyID string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET deleted_at = NOW()
		WHERE id = ANY($1) AND company_id = $2 AND deleted_at IS NULL
	`
	_, err := q.Exec(ctx, query, ids, companyID)
	if err != nil {
		return fmt.Errorf("failed to soft delete shifts: %w", err)
	}
	return nil
}
