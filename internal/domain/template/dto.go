package template

import (
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/validator"
)

type CreateTemplateRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	CompanyID string `json:"-"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !timeutil.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must match HH:mm (24-hour, UTC)",
		})
	}
	if !timeutil.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must match HH:mm (24-hour, UTC)",
		})
	}
	if timeutil.IsValidClock(r.StartTime) && timeutil.IsValidClock(r.EndTime) {
		start, _ := timeutil.ParseClock(r.StartTime)
		end, _ := timeutil.ParseClock(r.EndTime)
		if end <= start {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be after start_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTemplateRequest struct {
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	ID        string `json:"-"`
	CompanyID string `json:"-"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.StartTime == nil && r.EndTime == nil {
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
	if r.StartTime != nil && !timeutil.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must match HH:mm (24-hour, UTC)",
		})
	}
	if r.EndTime != nil && !timeutil.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must match HH:mm (24-hour, UTC)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TemplateResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	UsageCount int    `json:"usage_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
