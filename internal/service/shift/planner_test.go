package shift

import (
	"testing"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotIndex(shifts ...shift.Shift) map[string][]shift.Shift {
	bySlot := make(map[string][]shift.Shift)
	for _, s := range shifts {
		key := s.EmployeeID + "|" + timeutil.FormatDate(s.Date)
		bySlot[key] = append(bySlot[key], s)
	}
	return bySlot
}

func employeeIndex(shifts ...shift.Shift) map[string][]shift.Shift {
	byEmployee := make(map[string][]shift.Shift)
	for _, s := range shifts {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}
	return byEmployee
}

func TestExpandSlots_CartesianProduct(t *testing.T) {
	t.Parallel()

	employees := []string{"emp-1", "emp-2", "emp-3"}
	dates := []time.Time{testDate(t, "2025-08-11"), testDate(t, "2025-08-12")}

	candidates := ExpandSlots(employees, dates, clock(t, "09:00"), clock(t, "17:00"))

	require.Len(t, candidates, 6)
	for _, c := range candidates {
		assert.Equal(t, clock(t, "09:00"), c.StartTime)
		assert.Equal(t, clock(t, "17:00"), c.EndTime)
	}
}

func TestExpandSlots_RepeatedInputCollapses(t *testing.T) {
	t.Parallel()

	employees := []string{"emp-1", "emp-1"}
	dates := []time.Time{testDate(t, "2025-08-11"), testDate(t, "2025-08-11")}

	candidates := ExpandSlots(employees, dates, clock(t, "09:00"), clock(t, "17:00"))

	assert.Len(t, candidates, 1)
}

func TestExpandDuplicateToDates_SkipsSourceDate(t *testing.T) {
	t.Parallel()

	src := existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00")
	targets := []time.Time{testDate(t, "2025-08-11"), testDate(t, "2025-08-12"), testDate(t, "2025-08-13")}

	candidates := ExpandDuplicateToDates([]shift.Shift{src}, targets)

	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.Equal(t, "emp-1", c.EmployeeID)
		assert.False(t, c.Date.Equal(src.Date))
	}
}

func TestExpandDuplicateToEmployees_SkipsSourceEmployee(t *testing.T) {
	t.Parallel()

	src := existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00")

	candidates := ExpandDuplicateToEmployees([]shift.Shift{src}, []string{"emp-1", "emp-2"})

	require.Len(t, candidates, 1)
	assert.Equal(t, "emp-2", candidates[0].EmployeeID)
	assert.True(t, candidates[0].Date.Equal(src.Date))
}

func TestBuildPlan_SkipStrategyReportsConflictingCandidates(t *testing.T) {
	t.Parallel()

	// 3 employees x 2 dates with one pre-existing conflict: 5 clean
	// candidates and 1 skipped with the conflict reason.
	employees := []string{"emp-1", "emp-2", "emp-3"}
	dates := []time.Time{testDate(t, "2025-08-11"), testDate(t, "2025-08-12")}
	candidates := ExpandSlots(employees, dates, clock(t, "09:00"), clock(t, "17:00"))

	taken := existingShift(t, "shift-1", "emp-2", "2025-08-11", "10:00", "14:00")

	plan := BuildPlan(candidates, slotIndex(taken), employeeIndex(taken), defaultSettings(), shift.StrategySkip)

	assert.Len(t, plan.Create, 5)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, "emp-2", plan.Skipped[0].EmployeeID)
	assert.Equal(t, "2025-08-11", plan.Skipped[0].Date)
	assert.Equal(t, shift.SkipReasonConflict, plan.Skipped[0].Reason)
	assert.Empty(t, plan.Conflicts)
	assert.Empty(t, plan.OverwriteIDs)
}

func TestBuildPlan_BatchInternalOverlapDetected(t *testing.T) {
	t.Parallel()

	// Two overlapping shifts of the same employee duplicated onto one target
	// date collide with each other even when nothing exists there yet. The
	// first lands, the second must be rejected against it.
	sources := []shift.Shift{
		existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00"),
		existingShift(t, "shift-2", "emp-1", "2025-08-12", "10:00", "14:00"),
	}
	candidates := ExpandDuplicateToDates(sources, []time.Time{testDate(t, "2025-08-13")})
	require.Len(t, candidates, 2)

	plan := BuildPlan(candidates, nil, nil, defaultSettings(), shift.StrategyFail)

	assert.Len(t, plan.Create, 1)
	require.Len(t, plan.Conflicts, 1)
	assert.Equal(t, shift.SkipReasonConflict, plan.Conflicts[0].Reason)
	assert.Equal(t, shift.ConflictOverlap, plan.Conflicts[0].Report.Type)
}

func TestBuildPlan_OverwriteCannotClearBatchCollision(t *testing.T) {
	t.Parallel()

	// A collision with a candidate accepted earlier in the same batch has no
	// persisted row to remove, so overwrite degrades to a skip.
	sources := []shift.Shift{
		existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00"),
		existingShift(t, "shift-2", "emp-1", "2025-08-12", "10:00", "14:00"),
	}
	candidates := ExpandDuplicateToDates(sources, []time.Time{testDate(t, "2025-08-13")})

	plan := BuildPlan(candidates, nil, nil, defaultSettings(), shift.StrategyOverwrite)

	assert.Len(t, plan.Create, 1)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, shift.SkipReasonConflict, plan.Skipped[0].Reason)
	assert.Empty(t, plan.OverwriteIDs)
}

func TestBuildPlan_DailyHoursOverrunBlocksCandidate(t *testing.T) {
	t.Parallel()

	// The existing early shift leaves no room: 8h booked plus a 9h candidate
	// busts the 12h daily cap. No collision, so only the rules catch it.
	taken := existingShift(t, "shift-1", "emp-1", "2025-08-11", "00:00", "08:00")
	candidates := ExpandSlots([]string{"emp-1"}, []time.Time{testDate(t, "2025-08-11")},
		clock(t, "09:00"), clock(t, "18:00"))

	plan := BuildPlan(candidates, slotIndex(taken), employeeIndex(taken), defaultSettings(), shift.StrategyFail)

	assert.Empty(t, plan.Create)
	require.Len(t, plan.Conflicts, 1)
	assert.Equal(t, shift.SkipReasonRuleViolation, plan.Conflicts[0].Reason)
	assert.False(t, plan.Conflicts[0].Report.HasConflicts)
	require.NotEmpty(t, plan.Conflicts[0].Violations)
	assert.Equal(t, shift.RuleDailyHours, plan.Conflicts[0].Violations[0].Rule)
	require.Len(t, plan.Previews, 1)
	assert.False(t, plan.Previews[0].Rules.IsValid)
}

func TestBuildPlan_SkipStrategySkipsRuleViolations(t *testing.T) {
	t.Parallel()

	taken := existingShift(t, "shift-1", "emp-1", "2025-08-11", "00:00", "08:00")
	candidates := ExpandSlots([]string{"emp-1"}, []time.Time{testDate(t, "2025-08-11")},
		clock(t, "09:00"), clock(t, "18:00"))

	plan := BuildPlan(candidates, slotIndex(taken), employeeIndex(taken), defaultSettings(), shift.StrategySkip)

	assert.Empty(t, plan.Create)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, shift.SkipReasonRuleViolation, plan.Skipped[0].Reason)
}

func TestBuildPlan_AcceptedCandidatesCountTowardDailyHours(t *testing.T) {
	t.Parallel()

	// 6h and 7h on the same empty day: the first fits, the two together
	// exceed the cap, so the second is skipped.
	candidates := []shift.Candidate{
		testCandidate(t, "emp-1", "2025-08-11", "06:00", "12:00"),
		testCandidate(t, "emp-1", "2025-08-11", "13:00", "20:00"),
	}

	plan := BuildPlan(candidates, nil, nil, defaultSettings(), shift.StrategySkip)

	assert.Len(t, plan.Create, 1)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, shift.SkipReasonRuleViolation, plan.Skipped[0].Reason)
}

func TestBuildPlan_FailStrategyCollectsEveryConflict(t *testing.T) {
	t.Parallel()

	employees := []string{"emp-1", "emp-2"}
	dates := []time.Time{testDate(t, "2025-08-11")}
	candidates := ExpandSlots(employees, dates, clock(t, "09:00"), clock(t, "17:00"))

	taken := []shift.Shift{
		existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00"),
		existingShift(t, "shift-2", "emp-2", "2025-08-11", "12:00", "20:00"),
	}

	plan := BuildPlan(candidates, slotIndex(taken...), employeeIndex(taken...), defaultSettings(), shift.StrategyFail)

	// Both candidates collide; the caller aborts before creating anything.
	assert.Empty(t, plan.Create)
	require.Len(t, plan.Conflicts, 2)
	for _, conflict := range plan.Conflicts {
		assert.Equal(t, shift.SkipReasonConflict, conflict.Reason)
		assert.True(t, conflict.Report.HasConflicts)
	}
}

func TestBuildPlan_OverwriteStrategyMarksCollidingShifts(t *testing.T) {
	t.Parallel()

	candidates := ExpandSlots([]string{"emp-1"}, []time.Time{testDate(t, "2025-08-11")},
		clock(t, "09:00"), clock(t, "17:00"))

	taken := existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00")

	plan := BuildPlan(candidates, slotIndex(taken), employeeIndex(taken), defaultSettings(), shift.StrategyOverwrite)

	assert.Len(t, plan.Create, 1)
	assert.Equal(t, []string{"shift-1"}, plan.OverwriteIDs)
	assert.Empty(t, plan.Skipped)
	assert.Empty(t, plan.Conflicts)
}

func TestBuildPlan_AdjacencyNeverBlocks(t *testing.T) {
	t.Parallel()

	// Existing shift ends 09:00 sharp; the candidate starts immediately
	// after. Flagged in the preview, created anyway.
	candidates := ExpandSlots([]string{"emp-1"}, []time.Time{testDate(t, "2025-08-11")},
		clock(t, "09:00"), clock(t, "17:00"))

	taken := existingShift(t, "shift-1", "emp-1", "2025-08-11", "05:00", "09:00")

	plan := BuildPlan(candidates, slotIndex(taken), employeeIndex(taken), defaultSettings(), shift.StrategyFail)

	assert.Len(t, plan.Create, 1)
	assert.Empty(t, plan.Conflicts)
	require.Len(t, plan.Previews, 1)
	assert.True(t, plan.Previews[0].Report.HasConflicts)
	assert.Equal(t, shift.ConflictAdjacent, plan.Previews[0].Report.Type)
}

func TestBuildPlan_PreviewCoversEveryCandidate(t *testing.T) {
	t.Parallel()

	employees := []string{"emp-1", "emp-2"}
	dates := []time.Time{testDate(t, "2025-08-11"), testDate(t, "2025-08-12")}
	candidates := ExpandSlots(employees, dates, clock(t, "09:00"), clock(t, "17:00"))

	taken := existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00")

	plan := BuildPlan(candidates, slotIndex(taken), employeeIndex(taken), defaultSettings(), shift.StrategySkip)

	require.Len(t, plan.Previews, 4)
	flagged := 0
	for _, p := range plan.Previews {
		if p.Report.HasConflicts {
			flagged++
		}
	}
	assert.Equal(t, 1, flagged)
}
