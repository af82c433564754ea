package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/fixtures"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) company.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

const settingsColumns = `
	id, company_id, max_daily_hours, max_weekly_hours, min_break_hours,
	allow_overnight_shifts, timezone, created_at, updated_at
`

func scanSettings(row pgx.Row) (company.Settings, error) {
	var s company.Settings
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.MaxDailyHours, &s.MaxWeeklyHours, &s.MinBreakHours,
		&s.AllowOvernightShifts, &s.Timezone, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByCompanyID implements company.SettingsRepository.
func (r *settingsRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (company.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM company_settings WHERE company_id = $1`

	s, err := scanSettings(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Settings{}, company.ErrSettingsNotFound
		}
		return company.Settings{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	return s, nil
}

// CreateDefaults implements company.SettingsRepository. ON CONFLICT protects
// against two first-readers seeding concurrently: the winner's row is
// returned either way.
func (r *settingsRepositoryImpl) CreateDefaults(ctx context.Context, companyID string) (company.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_settings (
			id, company_id, max_daily_hours, max_weekly_hours, min_break_hours,
			allow_overnight_shifts, timezone, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		ON CONFLICT (company_id) DO UPDATE SET updated_at = company_settings.updated_at
		RETURNING ` + settingsColumns

	s, err := scanSettings(q.QueryRow(ctx, query,
		companyID,
		fixtures.DefaultMaxDailyHours,
		fixtures.DefaultMaxWeeklyHours,
		fixtures.DefaultMinBreakHours,
		fixtures.DefaultAllowOvernightShifts,
		fixtures.DefaultTimezone,
	))
	if err != nil {
		return company.Settings{}, fmt.Errorf("failed to seed company settings: %w", err)
	}

	return s, nil
}

// Update implements company.SettingsRepository.
func (r *settingsRepositoryImpl) Update(ctx context.Context, req company.UpdateSettingsRequest) (company.Settings, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.MaxDailyHours != nil {
		updates = append(updates, fmt.Sprintf("max_daily_hours = $%d", argIdx))
		args = append(args, *req.MaxDailyHours)
		argIdx++
	}
	if req.MaxWeeklyHours != nil {
		updates = append(updates, fmt.Sprintf("max_weekly_hours = $%d", argIdx))
		args = append(args, *req.MaxWeeklyHours)
		argIdx++
	}
	if req.MinBreakHours != nil {
		updates = append(updates, fmt.Sprintf("min_break_hours = $%d", argIdx))
		args = append(args, *req.MinBreakHours)
		argIdx++
	}
	if req.AllowOvernightShifts != nil {
		updates = append(updates, fmt.Sprintf("allow_overnight_shifts = $%d", argIdx))
		args = append(args, *req.AllowOvernightShifts)
		argIdx++
	}
	if req.Timezone != nil {
		updates = append(updates, fmt.Sprintf("timezone = $%d", argIdx))
		args = append(args, *req.Timezone)
		argIdx++
	}

	if len(updates) == 0 {
		return company.Settings{}, company.ErrInvalidRequestData
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.CompanyID)

	query := "UPDATE company_settings SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE company_id = $%d RETURNING ", argIdx) + settingsColumns

	s, err := scanSettings(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Settings{}, company.ErrSettingsNotFound
		}
		return company.Settings{}, fmt.Errorf("failed to update company settings: %w", err)
	}

	return s, nil
}
