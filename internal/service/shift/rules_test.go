package shift

import (
	"testing"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/company"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() company.Settings {
	return company.Settings{
		MaxDailyHours:        fixtures.DefaultMaxDailyHours,
		MaxWeeklyHours:       fixtures.DefaultMaxWeeklyHours,
		MinBreakHours:        fixtures.DefaultMinBreakHours,
		AllowOvernightShifts: fixtures.DefaultAllowOvernightShifts,
		Timezone:             fixtures.DefaultTimezone,
	}
}

func findViolation(violations []shift.Violation, rule string) *shift.Violation {
	for i := range violations {
		if violations[i].Rule == rule {
			return &violations[i]
		}
	}
	return nil
}

func TestEvaluateRules_CleanCandidatePasses(t *testing.T) {
	t.Parallel()

	c := testCandidate(t, "emp-1", "2025-08-11", "09:00", "17:00")
	result := EvaluateRules(c, nil, defaultSettings())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
}

func TestEvaluateRules_OvernightIsRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "22:00", "06:00"},
		{"zero-length shift", "09:00", "09:00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := testCandidate(t, "emp-1", "2025-08-11", tt.start, tt.end)
			result := EvaluateRules(c, nil, defaultSettings())

			assert.False(t, result.IsValid)
			v := findViolation(result.Violations, shift.RuleOvernight)
			require.NotNil(t, v)
			assert.Equal(t, shift.ViolationError, v.Severity)
		})
	}
}

func TestEvaluateRulesPreview_OvernightDowngradedWhenAllowed(t *testing.T) {
	t.Parallel()

	settings := defaultSettings()
	settings.AllowOvernightShifts = true

	c := testCandidate(t, "emp-1", "2025-08-11", "22:00", "06:00")
	result := EvaluateRulesPreview(c, nil, settings)

	assert.True(t, result.IsValid)
	v := findViolation(result.Violations, shift.RuleOvernight)
	require.NotNil(t, v)
	assert.Equal(t, shift.ViolationWarning, v.Severity)
}

func TestEvaluateRules_DailyHoursExceeded(t *testing.T) {
	t.Parallel()

	// Existing 4-hour shift plus a 9-hour candidate: 13 > 12.
	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "06:00", "10:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "11:00", "20:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.False(t, result.IsValid)
	v := findViolation(result.Violations, shift.RuleDailyHours)
	require.NotNil(t, v)
	assert.Equal(t, shift.ViolationError, v.Severity)
}

func TestEvaluateRules_DailyHoursWarningBand(t *testing.T) {
	t.Parallel()

	// 10 of 12 hours is above the 83% band but below the cap.
	c := testCandidate(t, "emp-1", "2025-08-11", "08:00", "18:00")
	result := EvaluateRules(c, nil, defaultSettings())

	assert.True(t, result.IsValid)
	v := findViolation(result.Violations, shift.RuleDailyHours)
	require.NotNil(t, v)
	assert.Equal(t, shift.ViolationWarning, v.Severity)
}

func TestEvaluateRules_OtherDayShiftsDoNotCountTowardDaily(t *testing.T) {
	t.Parallel()

	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-12", "09:00", "17:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "10:00", "14:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.Nil(t, findViolation(result.Violations, shift.RuleDailyHours))
}

func TestEvaluateRules_MinBreakBeforePreviousDayShift(t *testing.T) {
	t.Parallel()

	// Previous day ends 22:00, candidate starts 08:00: 10h rest < 11h.
	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-10", "14:00", "22:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "08:00", "12:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.False(t, result.IsValid)
	v := findViolation(result.Violations, shift.RuleMinBreak)
	require.NotNil(t, v)
	assert.Equal(t, shift.ViolationError, v.Severity)
}

func TestEvaluateRules_MinBreakAgainstNextDayShift(t *testing.T) {
	t.Parallel()

	// Candidate ends 23:00, next day starts 06:00: 7h rest < 11h.
	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-12", "06:00", "14:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "15:00", "23:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.False(t, result.IsValid)
	assert.NotNil(t, findViolation(result.Violations, shift.RuleMinBreak))
}

func TestEvaluateRules_SufficientBreakPasses(t *testing.T) {
	t.Parallel()

	// Previous day ends 18:00, candidate starts 08:00: 14h rest.
	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-10", "10:00", "18:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "08:00", "12:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.True(t, result.IsValid)
	assert.Nil(t, findViolation(result.Violations, shift.RuleMinBreak))
}

func TestEvaluateRules_WeeklyHoursIsWarningOnly(t *testing.T) {
	t.Parallel()

	// Four 9-hour shifts Monday through Thursday plus a 9-hour candidate on
	// Friday: 45 > 40, but weekly overruns never block.
	nearby := []shift.Shift{
		existingShift(t, "shift-1", "emp-1", "2025-08-11", "08:00", "17:00"),
		existingShift(t, "shift-2", "emp-1", "2025-08-12", "08:00", "17:00"),
		existingShift(t, "shift-3", "emp-1", "2025-08-13", "08:00", "17:00"),
		existingShift(t, "shift-4", "emp-1", "2025-08-14", "08:00", "17:00"),
	}
	c := testCandidate(t, "emp-1", "2025-08-15", "08:00", "17:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.True(t, result.IsValid)
	v := findViolation(result.Violations, shift.RuleWeeklyHours)
	require.NotNil(t, v)
	assert.Equal(t, shift.ViolationWarning, v.Severity)
	assert.Empty(t, result.Blocking())
}

func TestEvaluateRules_PreviousWeekShiftsDoNotCount(t *testing.T) {
	t.Parallel()

	// 2025-08-09 is the Saturday before the week of 2025-08-11.
	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-09", "08:00", "17:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "09:00", "12:00")

	result := EvaluateRules(c, nearby, defaultSettings())

	assert.Nil(t, findViolation(result.Violations, shift.RuleWeeklyHours))
}

func TestEvaluateRules_ZeroMinBreakDisablesCheck(t *testing.T) {
	t.Parallel()

	settings := defaultSettings()
	settings.MinBreakHours = decimal.Zero

	nearby := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-10", "14:00", "23:00")}
	c := testCandidate(t, "emp-1", "2025-08-11", "01:00", "05:00")

	result := EvaluateRules(c, nearby, settings)

	assert.Nil(t, findViolation(result.Violations, shift.RuleMinBreak))
}
