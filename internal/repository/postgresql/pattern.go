package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/pattern"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

type patternRepositoryImpl struct {
	db *database.DB
}

func NewPatternRepository(db *database.DB) pattern.Repository {
	return &patternRepositoryImpl{db: db}
}

// Upsert implements pattern.Repository.
func (r *patternRepositoryImpl) Upsert(ctx context.Context, employeeID string, start, end timeutil.Clock) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_patterns (
			id, employee_id, start_time, end_time, frequency, last_used_at, created_at
		) VALUES (
			uuidv7(), $1, $2::time, $3::time, 1, NOW(), NOW()
		)
		ON CONFLICT (employee_id, start_time, end_time) DO UPDATE
		SET frequency = shift_patterns.frequency + 1,
			last_used_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, start.String(), end.String())
	if err != nil {
		return fmt.Errorf("failed to upsert shift pattern: %w", err)
	}
	return nil
}

// GetByEmployeeID implements pattern.Repository.
func (r *patternRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, limit int) ([]pattern.Pattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id,
			to_char(start_time, 'HH24:MI') AS start_time,
			to_char(end_time, 'HH24:MI') AS end_time,
			frequency, last_used_at, created_at
		FROM shift_patterns
		WHERE employee_id = $1
		ORDER BY frequency DESC, last_used_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift patterns: %w", err)
	}
	defer rows.Close()

	var patterns []pattern.Pattern
	for rows.Next() {
		var p pattern.Pattern
		var startStr, endStr string
		if err := rows.Scan(&p.ID, &p.EmployeeID, &startStr, &endStr, &p.Frequency, &p.LastUsedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift pattern: %w", err)
		}
		if p.StartTime, err = timeutil.ParseClock(startStr); err != nil {
			return nil, fmt.Errorf("invalid stored start_time %q: %w", startStr, err)
		}
		if p.EndTime, err = timeutil.ParseClock(endStr); err != nil {
			return nil, fmt.Errorf("invalid stored end_time %q: %w", endStr, err)
		}
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift patterns: %w", err)
	}

	return patterns, nil
}

// DeleteStale implements pattern.Repository.
func (r *patternRepositoryImpl) DeleteStale(ctx context.Context, maxFrequency int, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_patterns
		WHERE frequency <= $1 AND last_used_at < $2
	`

	commandTag, err := q.Exec(ctx, query, maxFrequency, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale shift patterns: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
