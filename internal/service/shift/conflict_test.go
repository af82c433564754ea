package shift

import (
	"testing"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) timeutil.Clock {
	t.Helper()
	c, err := timeutil.ParseClock(s)
	require.NoError(t, err)
	return c
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func testCandidate(t *testing.T, employeeID, date, start, end string) shift.Candidate {
	t.Helper()
	return shift.Candidate{
		EmployeeID: employeeID,
		Date:       testDate(t, date),
		StartTime:  clock(t, start),
		EndTime:    clock(t, end),
	}
}

func existingShift(t *testing.T, id, employeeID, date, start, end string) shift.Shift {
	t.Helper()
	return shift.Shift{
		ID:         id,
		EmployeeID: employeeID,
		Date:       testDate(t, date),
		StartTime:  clock(t, start),
		EndTime:    clock(t, end),
		Status:     shift.StatusPending,
	}
}

func TestAnalyzeConflicts_NoExistingShifts(t *testing.T) {
	t.Parallel()

	c := testCandidate(t, "emp-1", "2025-08-11", "09:00", "17:00")
	report := AnalyzeConflicts(c, nil)

	assert.False(t, report.HasConflicts)
	assert.Empty(t, report.Conflicts)
}

func TestAnalyzeConflicts_IdenticalShiftIsDuplicate(t *testing.T) {
	t.Parallel()

	c := testCandidate(t, "emp-1", "2025-08-11", "09:00", "17:00")
	existing := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00")}

	report := AnalyzeConflicts(c, existing)

	require.True(t, report.HasConflicts)
	assert.Equal(t, shift.ConflictDuplicate, report.Type)
	assert.Equal(t, shift.SeverityHigh, report.Severity)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "shift-1", report.Conflicts[0].ShiftID)
}

func TestAnalyzeConflicts_BackToBackIsNotOverlap(t *testing.T) {
	t.Parallel()

	// 09:00-13:00 then 13:00-17:00: half-open intervals touch but do not
	// intersect. The zero-minute gap is still flagged for break review.
	c := testCandidate(t, "emp-1", "2025-08-11", "13:00", "17:00")
	existing := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "13:00")}

	report := AnalyzeConflicts(c, existing)

	require.True(t, report.HasConflicts)
	assert.Equal(t, shift.ConflictAdjacent, report.Type)
	assert.Equal(t, shift.SeverityLow, report.Severity)
	assert.False(t, HasBlockingConflict(report))
}

func TestAnalyzeConflicts_OverlapSeverityTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    string
		end      string
		severity shift.Severity
	}{
		{"four hours overlapped is high", "09:00", "17:00", shift.SeverityHigh},
		{"ninety minutes overlapped is medium", "11:30", "20:00", shift.SeverityMedium},
		{"thirty minutes overlapped is low", "12:30", "20:00", shift.SeverityLow},
	}

	// Existing shift 09:00-13:00.
	existing := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "13:00")}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := testCandidate(t, "emp-1", "2025-08-11", tt.start, tt.end)
			report := AnalyzeConflicts(c, existing)

			require.True(t, report.HasConflicts)
			assert.Equal(t, shift.ConflictOverlap, report.Type)
			assert.Equal(t, tt.severity, report.Severity)
			assert.True(t, HasBlockingConflict(report))
		})
	}
}

func TestAnalyzeConflicts_AdjacencyThresholds(t *testing.T) {
	t.Parallel()

	existing := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "13:00")}

	// 20-minute gap: flagged.
	near := testCandidate(t, "emp-1", "2025-08-11", "13:20", "17:00")
	report := AnalyzeConflicts(near, existing)
	require.True(t, report.HasConflicts)
	assert.Equal(t, shift.ConflictAdjacent, report.Type)

	// 45-minute gap: examined but not reported.
	mid := testCandidate(t, "emp-1", "2025-08-11", "13:45", "17:00")
	report = AnalyzeConflicts(mid, existing)
	assert.False(t, report.HasConflicts)

	// Two-hour gap: clean.
	far := testCandidate(t, "emp-1", "2025-08-11", "15:00", "17:00")
	report = AnalyzeConflicts(far, existing)
	assert.False(t, report.HasConflicts)
}

func TestAnalyzeConflicts_DuplicateOutranksOverlap(t *testing.T) {
	t.Parallel()

	c := testCandidate(t, "emp-1", "2025-08-11", "09:00", "17:00")
	existing := []shift.Shift{
		existingShift(t, "shift-1", "emp-1", "2025-08-11", "10:00", "12:00"),
		existingShift(t, "shift-2", "emp-1", "2025-08-11", "09:00", "17:00"),
	}

	report := AnalyzeConflicts(c, existing)

	require.True(t, report.HasConflicts)
	assert.Equal(t, shift.ConflictDuplicate, report.Type)
	assert.Equal(t, shift.SeverityHigh, report.Severity)
	assert.Len(t, report.Conflicts, 2)
	assert.ElementsMatch(t, []string{"shift-1", "shift-2"}, BlockingShiftIDs(report))
}

func TestAnalyzeConflicts_SuggestionsAreDeduplicated(t *testing.T) {
	t.Parallel()

	c := testCandidate(t, "emp-1", "2025-08-11", "09:00", "17:00")
	existing := []shift.Shift{
		existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00"),
		existingShift(t, "shift-2", "emp-1", "2025-08-11", "09:00", "17:00"),
	}

	report := AnalyzeConflicts(c, existing)

	require.True(t, report.HasConflicts)
	assert.Len(t, report.Conflicts, 2)
	assert.Len(t, report.Suggestions, 1)
}
