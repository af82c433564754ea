package company

import (
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`

	CompanyID string `json:"-"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Address == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one updatable field is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateSettingsRequest carries partial-patch semantics: only non-nil fields
// are written.
type UpdateSettingsRequest struct {
	MaxDailyHours        *decimal.Decimal `json:"max_daily_hours"`
	MaxWeeklyHours       *decimal.Decimal `json:"max_weekly_hours"`
	MinBreakHours        *decimal.Decimal `json:"min_break_hours"`
	AllowOvernightShifts *bool            `json:"allow_overnight_shifts"`
	Timezone             *string          `json:"timezone"`

	CompanyID string `json:"-"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaxDailyHours == nil && r.MaxWeeklyHours == nil && r.MinBreakHours == nil &&
		r.AllowOvernightShifts == nil && r.Timezone == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one settings field is required",
		})
	}
	if r.MaxDailyHours != nil && (r.MaxDailyHours.LessThanOrEqual(decimal.Zero) || r.MaxDailyHours.GreaterThan(decimal.NewFromInt(24))) {
		errs = append(errs, validator.ValidationError{
			Field:   "max_daily_hours",
			Message: "max_daily_hours must be greater than 0 and at most 24",
		})
	}
	if r.MaxWeeklyHours != nil && (r.MaxWeeklyHours.LessThanOrEqual(decimal.Zero) || r.MaxWeeklyHours.GreaterThan(decimal.NewFromInt(168))) {
		errs = append(errs, validator.ValidationError{
			Field:   "max_weekly_hours",
			Message: "max_weekly_hours must be greater than 0 and at most 168",
		})
	}
	if r.MinBreakHours != nil && (r.MinBreakHours.IsNegative() || r.MinBreakHours.GreaterThan(decimal.NewFromInt(24))) {
		errs = append(errs, validator.ValidationError{
			Field:   "min_break_hours",
			Message: "min_break_hours must be between 0 and 24",
		})
	}
	if r.Timezone != nil && validator.IsEmpty(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompanyResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Address   *string `json:"address,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type SettingsResponse struct {
	CompanyID            string `json:"company_id"`
	MaxDailyHours        string `json:"max_daily_hours"`
	MaxWeeklyHours       string `json:"max_weekly_hours"`
	MinBreakHours        string `json:"min_break_hours"`
	AllowOvernightShifts bool   `json:"allow_overnight_shifts"`
	Timezone             string `json:"timezone"`
	UpdatedAt            string `json:"updated_at"`
}
