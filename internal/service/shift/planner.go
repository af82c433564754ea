package shift

import (
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

// ExpandSlots produces a candidate for every (employee, date) combination
// with the same time range. Exact repeats in the input collapse to one
// candidate.
func ExpandSlots(employeeIDs []string, dates []time.Time, start, end timeutil.Clock) []shift.Candidate {
	seen := make(map[string]struct{}, len(employeeIDs)*len(dates))
	candidates := make([]shift.Candidate, 0, len(employeeIDs)*len(dates))

	for _, employeeID := range employeeIDs {
		for _, date := range dates {
			c := shift.Candidate{
				EmployeeID: employeeID,
				Date:       date,
				StartTime:  start,
				EndTime:    end,
			}
			if _, ok := seen[c.Key()]; ok {
				continue
			}
			seen[c.Key()] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// ExpandDuplicateToDates copies each source shift onto each target date,
// preserving the source's employee and time range. The no-op case where the
// target date equals the source's own date is skipped.
func ExpandDuplicateToDates(sources []shift.Shift, targetDates []time.Time) []shift.Candidate {
	var candidates []shift.Candidate
	seen := make(map[string]struct{})

	for _, src := range sources {
		for _, date := range targetDates {
			if date.Equal(src.Date) {
				continue
			}
			c := shift.Candidate{
				EmployeeID: src.EmployeeID,
				Date:       date,
				StartTime:  src.StartTime,
				EndTime:    src.EndTime,
			}
			key := c.Key() + "|" + c.StartTime.String() + "|" + c.EndTime.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// ExpandDuplicateToEmployees copies each source shift onto each target
// employee, preserving the source's date and time range. The no-op case
// where the target employee is the source's own employee is skipped.
func ExpandDuplicateToEmployees(sources []shift.Shift, targetEmployeeIDs []string) []shift.Candidate {
	var candidates []shift.Candidate
	seen := make(map[string]struct{})

	for _, src := range sources {
		for _, employeeID := range targetEmployeeIDs {
			if employeeID == src.EmployeeID {
				continue
			}
			c := shift.Candidate{
				EmployeeID: employeeID,
				Date:       src.Date,
				StartTime:  src.StartTime,
				EndTime:    src.EndTime,
			}
			key := c.Key() + "|" + c.StartTime.String() + "|" + c.EndTime.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// Plan is the outcome of running a candidate set through conflict analysis
// under one resolution strategy. Nothing is written here; the service
// applies the plan inside a transaction.
type Plan struct {
	// Create holds the candidates clear to insert.
	Create []shift.Candidate
	// Skipped reports candidates omitted under the skip strategy.
	Skipped []shift.SkippedCandidate
	// OverwriteIDs are the existing shifts the overwrite strategy removes.
	OverwriteIDs []string
	// Conflicts carries every conflicting candidate, populated under the
	// fail strategy to build the aggregate rejection.
	Conflicts []shift.CandidateConflict
	// Previews pairs every candidate with its analysis for preview mode.
	Previews []shift.CandidatePreview
}

// BuildPlan analyzes each candidate against the existing shifts in its
// (employee, date) slot plus every candidate already accepted earlier in the
// batch, runs the business rules on top, and sorts the candidate into the
// plan according to strategy. Duplicate and overlap conflicts count as
// collisions; adjacency is carried in the preview report but never blocks a
// candidate. nearbyByEmployee must hold each employee's non-deleted shifts
// covering the week window and adjacent days of every candidate date for
// that employee.
func BuildPlan(candidates []shift.Candidate, existingBySlot, nearbyByEmployee map[string][]shift.Shift, settings company.Settings, strategy shift.Strategy) Plan {
	var plan Plan

	// Shifts the plan removes so far; accepted batch candidates, indexed both
	// ways. Later candidates see the batch as if it were already persisted.
	removed := make(map[string]struct{})
	acceptedBySlot := make(map[string][]shift.Shift)
	acceptedByEmployee := make(map[string][]shift.Shift)

	for _, c := range candidates {
		slotShifts := append([]shift.Shift(nil), existingBySlot[c.Key()]...)
		slotShifts = append(slotShifts, acceptedBySlot[c.Key()]...)
		report := AnalyzeConflicts(c, slotShifts)

		blockingIDs, batchCollision := splitBlockingConflicts(report)
		blocked := HasBlockingConflict(report)

		// Overwrite can only clear persisted collisions. When it applies, the
		// rules are evaluated as if the colliding rows were already gone.
		overwrites := blocked && strategy == shift.StrategyOverwrite && !batchCollision
		dropped := removed
		if overwrites {
			dropped = make(map[string]struct{}, len(removed)+len(blockingIDs))
			for id := range removed {
				dropped[id] = struct{}{}
			}
			for _, id := range blockingIDs {
				dropped[id] = struct{}{}
			}
		}

		ruleShifts := withoutRemoved(nearbyByEmployee[c.EmployeeID], dropped)
		ruleShifts = append(ruleShifts, acceptedByEmployee[c.EmployeeID]...)
		rules := EvaluateRules(c, ruleShifts, settings)
		violated := len(rules.Blocking()) > 0

		plan.Previews = append(plan.Previews, shift.CandidatePreview{
			EmployeeID: c.EmployeeID,
			Date:       timeutil.FormatDate(c.Date),
			StartTime:  c.StartTime.String(),
			EndTime:    c.EndTime.String(),
			Report:     report,
			Rules:      rules,
		})

		accept := func() {
			plan.Create = append(plan.Create, c)
			pending := shift.Shift{
				EmployeeID: c.EmployeeID,
				Date:       c.Date,
				StartTime:  c.StartTime,
				EndTime:    c.EndTime,
			}
			acceptedBySlot[c.Key()] = append(acceptedBySlot[c.Key()], pending)
			acceptedByEmployee[c.EmployeeID] = append(acceptedByEmployee[c.EmployeeID], pending)
		}

		switch {
		case !blocked && !violated:
			accept()
		case strategy == shift.StrategySkip, strategy == shift.StrategyOverwrite:
			if overwrites && !violated {
				plan.OverwriteIDs = append(plan.OverwriteIDs, blockingIDs...)
				for _, id := range blockingIDs {
					removed[id] = struct{}{}
				}
				accept()
				continue
			}
			reason := shift.SkipReasonConflict
			if !blocked {
				reason = shift.SkipReasonRuleViolation
			}
			plan.Skipped = append(plan.Skipped, shift.SkippedCandidate{
				EmployeeID: c.EmployeeID,
				Date:       timeutil.FormatDate(c.Date),
				StartTime:  c.StartTime.String(),
				EndTime:    c.EndTime.String(),
				Reason:     reason,
			})
		default: // fail
			reason := shift.SkipReasonConflict
			if !blocked {
				reason = shift.SkipReasonRuleViolation
			}
			plan.Conflicts = append(plan.Conflicts, shift.CandidateConflict{
				EmployeeID: c.EmployeeID,
				Date:       timeutil.FormatDate(c.Date),
				StartTime:  c.StartTime.String(),
				EndTime:    c.EndTime.String(),
				Reason:     reason,
				Report:     report,
				Violations: rules.Blocking(),
			})
		}
	}

	return plan
}

// splitBlockingConflicts separates the removable collisions (persisted rows
// with ids) from collisions against candidates accepted earlier in the same
// batch, which carry no id and cannot be overwritten.
func splitBlockingConflicts(report shift.ConflictReport) (persistedIDs []string, batchCollision bool) {
	for _, cf := range report.Conflicts {
		if cf.Type != shift.ConflictDuplicate && cf.Type != shift.ConflictOverlap {
			continue
		}
		if cf.ShiftID == "" {
			batchCollision = true
			continue
		}
		persistedIDs = append(persistedIDs, cf.ShiftID)
	}
	return persistedIDs, batchCollision
}

func withoutRemoved(shifts []shift.Shift, removed map[string]struct{}) []shift.Shift {
	if len(removed) == 0 {
		return append([]shift.Shift(nil), shifts...)
	}
	out := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if _, ok := removed[s.ID]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
