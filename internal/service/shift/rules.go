package shift

import (
	"fmt"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/fixtures"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// EvaluateRules checks a candidate against the company's scheduling rules.
// nearby must hold the employee's non-deleted shifts covering at least the
// candidate's week window and both adjacent calendar days; the function
// filters by date itself. The candidate must not be present in nearby.
//
// Overnight candidates are rejected outright here regardless of the
// allow_overnight_shifts setting; EvaluateRulesPreview is the variant that
// honors the flag.
func EvaluateRules(c shift.Candidate, nearby []shift.Shift, settings company.Settings) shift.RuleResult {
	return evaluateRules(c, nearby, settings, false)
}

// EvaluateRulesPreview is the dry-run variant: when the company allows
// overnight shifts, a midnight-spanning candidate is reported as a warning
// instead of a blocking error.
func EvaluateRulesPreview(c shift.Candidate, nearby []shift.Shift, settings company.Settings) shift.RuleResult {
	return evaluateRules(c, nearby, settings, settings.AllowOvernightShifts)
}

func evaluateRules(c shift.Candidate, nearby []shift.Shift, settings company.Settings, permitOvernight bool) shift.RuleResult {
	// The hour math below assumes same-day ranges, so an overnight candidate
	// short-circuits before any aggregation.
	if c.EndTime <= c.StartTime {
		severity := shift.ViolationError
		if permitOvernight {
			severity = shift.ViolationWarning
		}
		return shift.RuleResult{
			IsValid: permitOvernight,
			Violations: []shift.Violation{{
				Rule:     shift.RuleOvernight,
				Severity: severity,
				Message:  "end time must be after start time; overnight shifts are not allowed",
			}},
		}
	}

	var violations []shift.Violation
	violations = append(violations, checkDailyHours(c, nearby, settings)...)
	violations = append(violations, checkMinBreak(c, nearby, settings)...)
	violations = append(violations, checkWeeklyHours(c, nearby, settings)...)

	result := shift.RuleResult{IsValid: true, Violations: violations}
	for _, v := range violations {
		if v.Severity == shift.ViolationError {
			result.IsValid = false
			break
		}
	}
	return result
}

func checkDailyHours(c shift.Candidate, nearby []shift.Shift, settings company.Settings) []shift.Violation {
	total := timeutil.DurationHours(c.StartTime, c.EndTime)
	for _, s := range nearby {
		if s.Date.Equal(c.Date) {
			total = total.Add(timeutil.DurationHours(s.StartTime, s.EndTime))
		}
	}

	if total.GreaterThan(settings.MaxDailyHours) {
		return []shift.Violation{{
			Rule:     shift.RuleDailyHours,
			Severity: shift.ViolationError,
			Message: fmt.Sprintf("total of %s hours on %s exceeds the daily limit of %s hours",
				total.String(), timeutil.FormatDate(c.Date), settings.MaxDailyHours.String()),
		}}
	}

	warnAt := settings.MaxDailyHours.Mul(decimal.NewFromFloat(fixtures.DailyHoursWarningRatio))
	if total.GreaterThanOrEqual(warnAt) {
		return []shift.Violation{{
			Rule:     shift.RuleDailyHours,
			Severity: shift.ViolationWarning,
			Message: fmt.Sprintf("total of %s hours on %s is close to the daily limit of %s hours",
				total.String(), timeutil.FormatDate(c.Date), settings.MaxDailyHours.String()),
		}}
	}
	return nil
}

func checkMinBreak(c shift.Candidate, nearby []shift.Shift, settings company.Settings) []shift.Violation {
	if settings.MinBreakHours.IsZero() {
		return nil
	}

	prevDay := c.Date.AddDate(0, 0, -1)
	nextDay := c.Date.AddDate(0, 0, 1)
	var violations []shift.Violation

	for _, s := range nearby {
		var gapMinutes int64
		switch {
		case s.Date.Equal(prevDay):
			gapMinutes = int64(minutesPerDay-int(s.EndTime)) + int64(c.StartTime)
		case s.Date.Equal(nextDay):
			gapMinutes = int64(minutesPerDay-int(c.EndTime)) + int64(s.StartTime)
		default:
			continue
		}

		gap := decimal.NewFromInt(gapMinutes).Div(decimal.NewFromInt(60))
		if gap.LessThan(settings.MinBreakHours) {
			violations = append(violations, shift.Violation{
				Rule:     shift.RuleMinBreak,
				Severity: shift.ViolationError,
				Message: fmt.Sprintf("only %s hours of rest before the shift on %s; the minimum break is %s hours",
					gap.String(), timeutil.FormatDate(s.Date), settings.MinBreakHours.String()),
			})
		}
	}
	return violations
}

// checkWeeklyHours sums the Sunday-through-Saturday week containing the
// candidate. Exceeding the weekly cap is advisory, not blocking.
func checkWeeklyHours(c shift.Candidate, nearby []shift.Shift, settings company.Settings) []shift.Violation {
	weekStart, weekEnd := timeutil.WeekWindow(c.Date)

	total := timeutil.DurationHours(c.StartTime, c.EndTime)
	for _, s := range nearby {
		if !s.Date.Before(weekStart) && s.Date.Before(weekEnd) {
			total = total.Add(timeutil.DurationHours(s.StartTime, s.EndTime))
		}
	}

	if total.GreaterThan(settings.MaxWeeklyHours) {
		return []shift.Violation{{
			Rule:     shift.RuleWeeklyHours,
			Severity: shift.ViolationWarning,
			Message: fmt.Sprintf("total of %s hours in the week of %s exceeds the weekly limit of %s hours",
				total.String(), timeutil.FormatDate(weekStart), settings.MaxWeeklyHours.String()),
		}}
	}
	return nil
}
