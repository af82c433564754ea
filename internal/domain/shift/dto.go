package shift

import (
	"strings"

	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/validator"
)

// Strategy governs how bulk and duplicate operations treat candidates that
// collide with existing shifts.
type Strategy string

const (
	// StrategyFail aborts the entire operation before creating anything if
	// any candidate conflicts.
	StrategyFail Strategy = "fail"
	// StrategySkip creates the clean candidates and reports the rest.
	StrategySkip Strategy = "skip"
	// StrategyOverwrite soft-deletes the colliding shifts first.
	StrategyOverwrite Strategy = "overwrite"
)

var StrategyValues = []string{
	string(StrategyFail),
	string(StrategySkip),
	string(StrategyOverwrite),
}

type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Note       *string `json:"note"`

	CompanyID string `json:"-"`
	ActorID   string `json:"-"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must match YYYY-MM-DD",
		})
	}
	if !timeutil.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must match HH:mm (24-hour, UTC, no timezone suffix)",
		})
	}
	if !timeutil.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must match HH:mm (24-hour, UTC, no timezone suffix)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Candidate converts the validated request into the unit the conflict and
// rule engines consume. Call only after Validate.
func (r *CreateShiftRequest) Candidate() (Candidate, error) {
	date, err := timeutil.ParseDate(r.Date)
	if err != nil {
		return Candidate{}, ErrInvalidRequestData
	}
	start, err := timeutil.ParseClock(r.StartTime)
	if err != nil {
		return Candidate{}, ErrInvalidTimeFormat
	}
	end, err := timeutil.ParseClock(r.EndTime)
	if err != nil {
		return Candidate{}, ErrInvalidTimeFormat
	}
	return Candidate{
		EmployeeID: r.EmployeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

type UpdateShiftRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Note      *string `json:"note"`

	ID        string `json:"-"`
	CompanyID string `json:"-"`
	ActorID   string `json:"-"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date == nil && r.StartTime == nil && r.EndTime == nil && r.Note == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one updatable field is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must match YYYY-MM-DD",
			})
		}
	}
	if r.StartTime != nil && !timeutil.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must match HH:mm (24-hour, UTC, no timezone suffix)",
		})
	}
	if r.EndTime != nil && !timeutil.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must match HH:mm (24-hour, UTC, no timezone suffix)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string
	DateFrom   *string
	DateTo     *string
	Status     *string

	Page  int
	Limit int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	if f.DateFrom != nil {
		if _, ok := validator.IsValidDate(*f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must match YYYY-MM-DD",
			})
		}
	}
	if f.DateTo != nil {
		if _, ok := validator.IsValidDate(*f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must match YYYY-MM-DD",
			})
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkCreateRequest struct {
	EmployeeIDs        []string `json:"employee_ids"`
	Dates              []string `json:"dates"`
	StartTime          *string  `json:"start_time"`
	EndTime            *string  `json:"end_time"`
	TemplateID         *string  `json:"template_id"`
	ConflictResolution string   `json:"conflict_resolution"`
	PreviewOnly        bool     `json:"preview_only"`
	Note               *string  `json:"note"`

	CompanyID string `json:"-"`
	ActorID   string `json:"-"`
}

func (r *BulkCreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "employee_ids must not be empty",
		})
	}
	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "dates",
			Message: "dates must not be empty",
		})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dates",
				Message: "every date must match YYYY-MM-DD",
			})
			break
		}
	}

	hasTimes := r.StartTime != nil || r.EndTime != nil
	if r.TemplateID != nil && hasTimes {
		errs = append(errs, validator.ValidationError{
			Field:   "template_id",
			Message: "template_id and explicit start_time/end_time are mutually exclusive",
		})
	}
	if r.TemplateID == nil {
		if r.StartTime == nil || !timeutil.IsValidClock(*r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must match HH:mm when no template_id is given",
			})
		}
		if r.EndTime == nil || !timeutil.IsValidClock(*r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must match HH:mm when no template_id is given",
			})
		}
	}

	if r.ConflictResolution == "" {
		r.ConflictResolution = string(StrategyFail)
	}
	if !validator.IsInSlice(r.ConflictResolution, StrategyValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "conflict_resolution",
			Message: "conflict_resolution must be one of: " + strings.Join(StrategyValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DuplicateRequest struct {
	SourceShiftIDs     []string `json:"source_shift_ids"`
	TargetDates        []string `json:"target_dates"`
	TargetEmployeeIDs  []string `json:"target_employee_ids"`
	ConflictResolution string   `json:"conflict_resolution"`

	CompanyID string `json:"-"`
	ActorID   string `json:"-"`
}

func (r *DuplicateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.SourceShiftIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "source_shift_ids",
			Message: "source_shift_ids must not be empty",
		})
	}

	// Exactly one target axis: dates (employees preserved) or employees
	// (dates preserved).
	if len(r.TargetDates) == 0 && len(r.TargetEmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target_dates",
			Message: "either target_dates or target_employee_ids is required",
		})
	}
	if len(r.TargetDates) > 0 && len(r.TargetEmployeeIDs) > 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target_employee_ids",
			Message: "target_dates and target_employee_ids are mutually exclusive",
		})
	}
	for _, d := range r.TargetDates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "target_dates",
				Message: "every target date must match YYYY-MM-DD",
			})
			break
		}
	}

	if r.ConflictResolution == "" {
		r.ConflictResolution = string(StrategyFail)
	}
	if !validator.IsInSlice(r.ConflictResolution, StrategyValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "conflict_resolution",
			Message: "conflict_resolution must be one of: " + strings.Join(StrategyValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Note       *string `json:"note,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListShiftsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Shifts     []ShiftResponse `json:"shifts"`
}

// ValidationReport is the dry-run output of the validate endpoint: the full
// conflict analysis plus rule evaluation, nothing written.
type ValidationReport struct {
	Conflicts ConflictReport `json:"conflicts"`
	Rules     RuleResult     `json:"rules"`
}

// SkippedCandidate reports one omitted candidate under the skip strategy.
type SkippedCandidate struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Reason     string `json:"reason"`
}

const (
	SkipReasonConflict      = "CONFLICT_DETECTED"
	SkipReasonRuleViolation = "RULE_VIOLATION"
)

type BulkResult struct {
	Created     []ShiftResponse     `json:"created"`
	Skipped     []SkippedCandidate  `json:"skipped,omitempty"`
	Overwritten int                 `json:"overwritten,omitempty"`
	Preview     bool                `json:"preview,omitempty"`
	Candidates  []CandidatePreview  `json:"candidates,omitempty"`
}

// CandidatePreview pairs a planned candidate with its conflict analysis for
// preview_only responses.
type CandidatePreview struct {
	EmployeeID string         `json:"employee_id"`
	Date       string         `json:"date"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	Report     ConflictReport `json:"report"`
	Rules      RuleResult     `json:"rules"`
}

type Suggestion struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Confidence int    `json:"confidence"`
	Source     string `json:"source"`
}

const (
	SuggestionSourcePattern  = "pattern"
	SuggestionSourceRecent   = "recent_shift"
	SuggestionSourceTemplate = "template"
)
