package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.Repository {
	return &templateRepositoryImpl{db: db}
}

const templateColumns = `
	id, company_id, name,
	to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time,
	usage_count, created_at, updated_at
`

func scanTemplate(row pgx.Row) (template.Template, error) {
	var t template.Template
	var startStr, endStr string

	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Name,
		&startStr, &endStr,
		&t.UsageCount, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return template.Template{}, err
	}

	if t.StartTime, err = timeutil.ParseClock(startStr); err != nil {
		return template.Template{}, fmt.Errorf("invalid stored start_time %q: %w", startStr, err)
	}
	if t.EndTime, err = timeutil.ParseClock(endStr); err != nil {
		return template.Template{}, fmt.Errorf("invalid stored end_time %q: %w", endStr, err)
	}
	return t, nil
}

// Create implements template.Repository. Template names are unique per
// company among non-deleted rows.
func (r *templateRepositoryImpl) Create(ctx context.Context, t template.Template) (template.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_templates (
			id, company_id, name, start_time, end_time, usage_count, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3::time, $4::time, 0, NOW(), NOW()
		) RETURNING id, usage_count, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.CompanyID, t.Name, t.StartTime.String(), t.EndTime.String(),
	).Scan(&t.ID, &t.UsageCount, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return template.Template{}, template.ErrTemplateNameExists
		}
		return template.Template{}, fmt.Errorf("failed to create shift template: %w", err)
	}

	return t, nil
}

// GetByID implements template.Repository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (template.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + templateColumns + `
		FROM shift_templates
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	t, err := scanTemplate(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return template.Template{}, template.ErrTemplateNotFound
		}
		return template.Template{}, fmt.Errorf("failed to get shift template: %w", err)
	}

	return t, nil
}

// GetByCompanyID implements template.Repository.
func (r *templateRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]template.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + templateColumns + `
		FROM shift_templates
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift templates: %w", err)
	}
	return collectTemplates(rows)
}

// GetMostUsed implements template.Repository.
func (r *templateRepositoryImpl) GetMostUsed(ctx context.Context, companyID string, limit int) ([]template.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + templateColumns + `
		FROM shift_templates
		WHERE company_id = $1 AND deleted_at IS NULL AND usage_count > 0
		ORDER BY usage_count DESC, updated_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query most used templates: %w", err)
	}
	return collectTemplates(rows)
}

func collectTemplates(rows pgx.Rows) ([]template.Template, error) {
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift templates: %w", err)
	}
	return templates, nil
}

// Update implements template.Repository.
func (r *templateRepositoryImpl) Update(ctx context.Context, req template.UpdateTemplateRequest) (template.Template, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
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

	if len(updates) == 0 {
		return template.Template{}, template.ErrInvalidRequestData
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)
	idIdx := argIdx
	argIdx++
	args = append(args, req.CompanyID)

	query := "UPDATE shift_templates SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING ", idIdx, argIdx) +
		templateColumns

	t, err := scanTemplate(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return template.Template{}, template.ErrTemplateNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return template.Template{}, template.ErrTemplateNameExists
		}
		return template.Template{}, fmt.Errorf("failed to update shift template: %w", err)
	}

	return t, nil
}

// IncrementUsage implements template.Repository.
func (r *templateRepositoryImpl) IncrementUsage(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_templates
		SET usage_count = usage_count + 1, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to increment template usage: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return template.ErrTemplateNotFound
	}
	return nil
}

// SoftDelete implements template.Repository.
func (r *templateRepositoryImpl) SoftDelete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_templates
		SET deleted_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to soft delete shift template: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return template.ErrTemplateNotFound
	}
	return nil
}
