package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/audit"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/auth"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/employee"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/pattern"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
	"github.com/shiftly-hq/shiftly-backend-go/internal/repository/postgresql"
)

const defaultSuggestionLimit = 5

type ShiftServiceImpl struct {
	db           *database.DB
	shiftRepo    shift.Repository
	employeeRepo employee.Repository
	patternRepo  pattern.Repository
	templateRepo template.Repository
	auditRepo    audit.Repository
	companySvc   company.Service

	patternMaxFrequency int
	patternMaxAgeDays   int
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.Repository,
	employeeRepo employee.Repository,
	patternRepo pattern.Repository,
	templateRepo template.Repository,
	auditRepo audit.Repository,
	companySvc company.Service,
	patternMaxFrequency int,
	patternMaxAgeDays int,
) shift.Service {
	return &ShiftServiceImpl{
		db:                  db,
		shiftRepo:           shiftRepo,
		employeeRepo:        employeeRepo,
		patternRepo:         patternRepo,
		templateRepo:        templateRepo,
		auditRepo:           auditRepo,
		companySvc:          companySvc,
		patternMaxFrequency: patternMaxFrequency,
		patternMaxAgeDays:   patternMaxAgeDays,
	}
}

func tenantFromContext(ctx context.Context) (actorID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	actorID, _ = claims["user_id"].(string)
	companyID, _ = claims["company_id"].(string)
	if actorID == "" || companyID == "" {
		return "", "", auth.ErrInvalidToken
	}
	return actorID, companyID, nil
}

// checkEmployee resolves the employee and enforces tenancy: an id belonging
// to another company is an authorization failure, never a lookup miss.
func (s *ShiftServiceImpl) checkEmployee(ctx context.Context, employeeID, companyID string) (employee.Employee, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotInCompany
	}
	if e.Status != employee.StatusActive {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return e, nil
}

// nearbyWindow is the fetch range for rule evaluation: the candidate's week
// plus both adjacent calendar days, whichever is wider.
func nearbyWindow(date time.Time) (from, to time.Time) {
	weekStart, weekEnd := timeutil.WeekWindow(date)
	from = date.AddDate(0, 0, -1)
	if weekStart.Before(from) {
		from = weekStart
	}
	to = date.AddDate(0, 0, 1)
	if last := weekEnd.AddDate(0, 0, -1); last.After(to) {
		to = last
	}
	return from, to
}

func excludeShift(shifts []shift.Shift, id string) []shift.Shift {
	if id == "" {
		return shifts
	}
	out := shifts[:0:0]
	for _, s := range shifts {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// analyzeCandidate runs the conflict analysis and rule evaluation for one
// candidate, excluding excludeID from the existing set (used on updates so a
// shift does not conflict with itself).
func (s *ShiftServiceImpl) analyzeCandidate(ctx context.Context, c shift.Candidate, companyID, excludeID string, preview bool) (shift.ValidationReport, error) {
	settings, err := s.companySvc.GetSettings(ctx, companyID)
	if err != nil {
		return shift.ValidationReport{}, err
	}

	sameDay, err := s.shiftRepo.GetByEmployeeAndDate(ctx, c.EmployeeID, c.Date)
	if err != nil {
		return shift.ValidationReport{}, err
	}
	sameDay = excludeShift(sameDay, excludeID)

	from, to := nearbyWindow(c.Date)
	nearby, err := s.shiftRepo.GetByEmployeeDateRange(ctx, c.EmployeeID, from, to)
	if err != nil {
		return shift.ValidationReport{}, err
	}
	nearby = excludeShift(nearby, excludeID)

	report := shift.ValidationReport{
		Conflicts: AnalyzeConflicts(c, sameDay),
	}
	if preview {
		report.Rules = EvaluateRulesPreview(c, nearby, settings)
	} else {
		report.Rules = EvaluateRules(c, nearby, settings)
	}
	return report, nil
}

// rejectOnAnalysis maps a failed analysis to the domain error the caller
// sees: duplicates and overlaps before rule violations.
func rejectOnAnalysis(report shift.ValidationReport) error {
	if report.Conflicts.HasConflicts {
		switch report.Conflicts.Type {
		case shift.ConflictDuplicate:
			return shift.ErrDuplicateShift
		case shift.ConflictOverlap:
			return shift.ErrShiftOverlap
		}
	}
	if blocking := report.Rules.Blocking(); len(blocking) > 0 {
		return &shift.RuleViolationError{Violations: blocking}
	}
	return nil
}

// Create implements shift.Service.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	c, err := req.Candidate()
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if c.EndTime <= c.StartTime {
		return shift.ShiftResponse{}, shift.ErrOvernightNotAllowed
	}

	if _, err := s.checkEmployee(ctx, c.EmployeeID, req.CompanyID); err != nil {
		return shift.ShiftResponse{}, err
	}

	report, err := s.analyzeCandidate(ctx, c, req.CompanyID, "", false)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := rejectOnAnalysis(report); err != nil {
		return shift.ShiftResponse{}, err
	}

	var created shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.shiftRepo.Create(txCtx, shift.Shift{
			EmployeeID: c.EmployeeID,
			CompanyID:  req.CompanyID,
			Date:       c.Date,
			StartTime:  c.StartTime,
			EndTime:    c.EndTime,
			Note:       req.Note,
			Status:     shift.StatusPending,
		})
		if err != nil {
			return err
		}

		if err := s.patternRepo.Upsert(txCtx, c.EmployeeID, c.StartTime, c.EndTime); err != nil {
			return fmt.Errorf("failed to update shift pattern: %w", err)
		}

		return s.auditRepo.Create(txCtx, audit.Entry{
			CompanyID:  req.CompanyID,
			ActorID:    req.ActorID,
			Action:     audit.ActionCreate,
			EntityType: "shift",
			EntityID:   created.ID,
			Detail: map[string]interface{}{
				"employee_id": c.EmployeeID,
				"date":        timeutil.FormatDate(c.Date),
				"start_time":  c.StartTime.String(),
				"end_time":    c.EndTime.String(),
			},
		})
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(created), nil
}

// Get implements shift.Service.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	_, companyID, err := tenantFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if found.CompanyID != companyID {
		return shift.ShiftResponse{}, shift.ErrShiftNotInCompany
	}
	return toShiftResponse(found), nil
}

// List implements shift.Service.
func (s *ShiftServiceImpl) List(ctx context.Context, f shift.Filter) (shift.ListShiftsResponse, error) {
	_, companyID, err := tenantFromContext(ctx)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}
	if err := f.Validate(); err != nil {
		return shift.ListShiftsResponse{}, err
	}

	shifts, total, err := s.shiftRepo.List(ctx, companyID, f)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	resp := shift.ListShiftsResponse{
		TotalCount: total,
		Page:       f.Page,
		Limit:      f.Limit,
		Shifts:     make([]shift.ShiftResponse, 0, len(shifts)),
	}
	for _, sh := range shifts {
		resp.Shifts = append(resp.Shifts, toShiftResponse(sh))
	}
	return resp, nil
}

// Update implements shift.Service. The patched shift is re-validated as if
// it were being created, with the shift's own current row excluded from the
// conflict set.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if existing.CompanyID != req.CompanyID {
		return shift.ShiftResponse{}, shift.ErrShiftNotInCompany
	}

	c := shift.Candidate{
		EmployeeID: existing.EmployeeID,
		Date:       existing.Date,
		StartTime:  existing.StartTime,
		EndTime:    existing.EndTime,
	}
	if req.Date != nil {
		if c.Date, err = timeutil.ParseDate(*req.Date); err != nil {
			return shift.ShiftResponse{}, shift.ErrInvalidRequestData
		}
	}
	if req.StartTime != nil {
		if c.StartTime, err = timeutil.ParseClock(*req.StartTime); err != nil {
			return shift.ShiftResponse{}, shift.ErrInvalidTimeFormat
		}
	}
	if req.EndTime != nil {
		if c.EndTime, err = timeutil.ParseClock(*req.EndTime); err != nil {
			return shift.ShiftResponse{}, shift.ErrInvalidTimeFormat
		}
	}
	if c.EndTime <= c.StartTime {
		return shift.ShiftResponse{}, shift.ErrOvernightNotAllowed
	}

	report, err := s.analyzeCandidate(ctx, c, req.CompanyID, existing.ID, false)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := rejectOnAnalysis(report); err != nil {
		return shift.ShiftResponse{}, err
	}

	var updated shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.shiftRepo.Update(txCtx, req)
		if err != nil {
			return err
		}

		return s.auditRepo.Create(txCtx, audit.Entry{
			CompanyID:  req.CompanyID,
			ActorID:    req.ActorID,
			Action:     audit.ActionUpdate,
			EntityType: "shift",
			EntityID:   updated.ID,
			Detail: map[string]interface{}{
				"date":       timeutil.FormatDate(updated.Date),
				"start_time": updated.StartTime.String(),
				"end_time":   updated.EndTime.String(),
			},
		})
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(updated), nil
}

// Confirm implements shift.Service.
func (s *ShiftServiceImpl) Confirm(ctx context.Context, id string) (shift.ShiftResponse, error) {
	actorID, companyID, err := tenantFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if existing.CompanyID != companyID {
		return shift.ShiftResponse{}, shift.ErrShiftNotInCompany
	}

	var confirmed shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		confirmed, err = s.shiftRepo.UpdateStatus(txCtx, id, companyID, shift.StatusConfirmed)
		if err != nil {
			return err
		}

		return s.auditRepo.Create(txCtx, audit.Entry{
			CompanyID:  companyID,
			ActorID:    actorID,
			Action:     audit.ActionConfirm,
			EntityType: "shift",
			EntityID:   id,
		})
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(confirmed), nil
}

// Delete implements shift.Service.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	actorID, companyID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CompanyID != companyID {
		return shift.ErrShiftNotInCompany
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.shiftRepo.SoftDelete(txCtx, id, companyID); err != nil {
			return err
		}

		return s.auditRepo.Create(txCtx, audit.Entry{
			CompanyID:  companyID,
			ActorID:    actorID,
			Action:     audit.ActionDelete,
			EntityType: "shift",
			EntityID:   id,
		})
	})
}

// ValidateCandidate implements shift.Service: the dry-run endpoint. Unlike
// Create, the overnight check here honors the company's
// allow_overnight_shifts setting.
func (s *ShiftServiceImpl) ValidateCandidate(ctx context.Context, req shift.CreateShiftRequest) (shift.ValidationReport, error) {
	if err := req.Validate(); err != nil {
		return shift.ValidationReport{}, err
	}
	c, err := req.Candidate()
	if err != nil {
		return shift.ValidationReport{}, err
	}

	if _, err := s.checkEmployee(ctx, c.EmployeeID, req.CompanyID); err != nil {
		return shift.ValidationReport{}, err
	}

	return s.analyzeCandidate(ctx, c, req.CompanyID, "", true)
}

// BulkCreate implements shift.Service.
func (s *ShiftServiceImpl) BulkCreate(ctx context.Context, req shift.BulkCreateRequest) (shift.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return shift.BulkResult{}, err
	}

	var start, end timeutil.Clock
	if req.TemplateID != nil {
		tmpl, err := s.templateRepo.GetByID(ctx, *req.TemplateID, req.CompanyID)
		if err != nil {
			return shift.BulkResult{}, err
		}
		start, end = tmpl.StartTime, tmpl.EndTime
	} else {
		var err error
		if start, err = timeutil.ParseClock(*req.StartTime); err != nil {
			return shift.BulkResult{}, shift.ErrInvalidTimeFormat
		}
		if end, err = timeutil.ParseClock(*req.EndTime); err != nil {
			return shift.BulkResult{}, shift.ErrInvalidTimeFormat
		}
	}
	if end <= start {
		return shift.BulkResult{}, shift.ErrOvernightNotAllowed
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, d := range req.Dates {
		date, err := timeutil.ParseDate(d)
		if err != nil {
			return shift.BulkResult{}, shift.ErrInvalidRequestData
		}
		dates = append(dates, date)
	}

	for _, employeeID := range uniqueStrings(req.EmployeeIDs) {
		if _, err := s.checkEmployee(ctx, employeeID, req.CompanyID); err != nil {
			return shift.BulkResult{}, err
		}
	}

	candidates := ExpandSlots(uniqueStrings(req.EmployeeIDs), dates, start, end)
	plan, err := s.planAgainstExisting(ctx, candidates, req.CompanyID, shift.Strategy(req.ConflictResolution))
	if err != nil {
		return shift.BulkResult{}, err
	}

	if req.PreviewOnly {
		return shift.BulkResult{Preview: true, Candidates: plan.Previews}, nil
	}
	if len(plan.Conflicts) > 0 {
		return shift.BulkResult{}, &shift.ConflictsDetectedError{Conflicts: plan.Conflicts}
	}

	return s.applyPlan(ctx, plan, req.CompanyID, req.ActorID, req.Note, req.TemplateID, audit.ActionBulkCreate)
}

// Duplicate implements shift.Service.
func (s *ShiftServiceImpl) Duplicate(ctx context.Context, req shift.DuplicateRequest) (shift.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return shift.BulkResult{}, err
	}

	sources := make([]shift.Shift, 0, len(req.SourceShiftIDs))
	for _, id := range uniqueStrings(req.SourceShiftIDs) {
		src, err := s.shiftRepo.GetByID(ctx, id)
		if err != nil {
			return shift.BulkResult{}, err
		}
		if src.CompanyID != req.CompanyID {
			return shift.BulkResult{}, shift.ErrShiftNotInCompany
		}
		sources = append(sources, src)
	}

	var candidates []shift.Candidate
	if len(req.TargetDates) > 0 {
		targetDates := make([]time.Time, 0, len(req.TargetDates))
		for _, d := range req.TargetDates {
			date, err := timeutil.ParseDate(d)
			if err != nil {
				return shift.BulkResult{}, shift.ErrInvalidRequestData
			}
			targetDates = append(targetDates, date)
		}
		candidates = ExpandDuplicateToDates(sources, targetDates)
	} else {
		for _, employeeID := range uniqueStrings(req.TargetEmployeeIDs) {
			if _, err := s.checkEmployee(ctx, employeeID, req.CompanyID); err != nil {
				return shift.BulkResult{}, err
			}
		}
		candidates = ExpandDuplicateToEmployees(sources, uniqueStrings(req.TargetEmployeeIDs))
	}

	plan, err := s.planAgainstExisting(ctx, candidates, req.CompanyID, shift.Strategy(req.ConflictResolution))
	if err != nil {
		return shift.BulkResult{}, err
	}
	if len(plan.Conflicts) > 0 {
		return shift.BulkResult{}, &shift.ConflictsDetectedError{Conflicts: plan.Conflicts}
	}

	return s.applyPlan(ctx, plan, req.CompanyID, req.ActorID, nil, nil, audit.ActionDuplicate)
}

// planAgainstExisting fetches every (employee, date) slot the candidates
// touch in one query, loads each employee's rule-evaluation window, and runs
// the planner over the indexed result.
func (s *ShiftServiceImpl) planAgainstExisting(ctx context.Context, candidates []shift.Candidate, companyID string, strategy shift.Strategy) (Plan, error) {
	settings, err := s.companySvc.GetSettings(ctx, companyID)
	if err != nil {
		return Plan{}, err
	}

	type dateSpan struct{ min, max time.Time }
	spans := make(map[string]dateSpan)
	dateKeys := make(map[string]time.Time)
	for _, c := range candidates {
		dateKeys[timeutil.FormatDate(c.Date)] = c.Date
		span, ok := spans[c.EmployeeID]
		if !ok {
			spans[c.EmployeeID] = dateSpan{min: c.Date, max: c.Date}
			continue
		}
		if c.Date.Before(span.min) {
			span.min = c.Date
		}
		if c.Date.After(span.max) {
			span.max = c.Date
		}
		spans[c.EmployeeID] = span
	}

	ids := make([]string, 0, len(spans))
	for id := range spans {
		ids = append(ids, id)
	}
	dates := make([]time.Time, 0, len(dateKeys))
	for _, d := range dateKeys {
		dates = append(dates, d)
	}

	existing, err := s.shiftRepo.GetForSlots(ctx, ids, dates)
	if err != nil {
		return Plan{}, err
	}

	bySlot := make(map[string][]shift.Shift)
	for _, sh := range existing {
		key := sh.EmployeeID + "|" + timeutil.FormatDate(sh.Date)
		bySlot[key] = append(bySlot[key], sh)
	}

	nearby := make(map[string][]shift.Shift, len(spans))
	for employeeID, span := range spans {
		from, _ := nearbyWindow(span.min)
		_, to := nearbyWindow(span.max)
		shifts, err := s.shiftRepo.GetByEmployeeDateRange(ctx, employeeID, from, to)
		if err != nil {
			return Plan{}, err
		}
		nearby[employeeID] = shifts
	}

	return BuildPlan(candidates, bySlot, nearby, settings, strategy), nil
}

// applyPlan executes a plan inside one transaction: overwrite deletions
// first, then inserts, pattern upserts, the template usage bump when the
// candidates came from a template, and a single audit row.
func (s *ShiftServiceImpl) applyPlan(ctx context.Context, plan Plan, companyID, actorID string, note, templateID *string, action audit.Action) (shift.BulkResult, error) {
	result := shift.BulkResult{
		Created:     make([]shift.ShiftResponse, 0, len(plan.Create)),
		Skipped:     plan.Skipped,
		Overwritten: len(plan.OverwriteIDs),
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if len(plan.OverwriteIDs) > 0 {
			if err := s.shiftRepo.SoftDeleteMany(txCtx, plan.OverwriteIDs, companyID); err != nil {
				return err
			}
		}

		for _, c := range plan.Create {
			created, err := s.shiftRepo.Create(txCtx, shift.Shift{
				EmployeeID: c.EmployeeID,
				CompanyID:  companyID,
				Date:       c.Date,
				StartTime:  c.StartTime,
				EndTime:    c.EndTime,
				Note:       note,
				Status:     shift.StatusPending,
			})
			if err != nil {
				return err
			}
			result.Created = append(result.Created, toShiftResponse(created))

			if err := s.patternRepo.Upsert(txCtx, c.EmployeeID, c.StartTime, c.EndTime); err != nil {
				return fmt.Errorf("failed to update shift pattern: %w", err)
			}
		}

		if templateID != nil && len(plan.Create) > 0 {
			if err := s.templateRepo.IncrementUsage(txCtx, *templateID, companyID); err != nil {
				return err
			}
		}

		return s.auditRepo.Create(txCtx, audit.Entry{
			CompanyID:  companyID,
			ActorID:    actorID,
			Action:     action,
			EntityType: "shift",
			Detail: map[string]interface{}{
				"created":     len(plan.Create),
				"skipped":     len(plan.Skipped),
				"overwritten": len(plan.OverwriteIDs),
			},
		})
	})
	if err != nil {
		return shift.BulkResult{}, err
	}

	return result, nil
}

// Suggestions implements shift.Service.
func (s *ShiftServiceImpl) Suggestions(ctx context.Context, employeeID string, limit int) ([]shift.Suggestion, error) {
	_, companyID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.CompanyID != companyID {
		return nil, employee.ErrEmployeeNotInCompany
	}

	patterns, err := s.patternRepo.GetByEmployeeID(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}
	recent, err := s.shiftRepo.GetRecentDistinct(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}
	templates, err := s.templateRepo.GetMostUsed(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}

	return BlendSuggestions(patterns, recent, templates, limit), nil
}

// CleanupPatterns implements shift.Service: removes pattern rows whose
// frequency never grew past the threshold and that have not been used for
// the configured number of days.
func (s *ShiftServiceImpl) CleanupPatterns(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.patternMaxAgeDays)
	return s.patternRepo.DeleteStale(ctx, s.patternMaxFrequency, cutoff)
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       timeutil.FormatDate(s.Date),
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		Note:       s.Note,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
}
