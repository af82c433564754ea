package shift

import (
	"testing"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/pattern"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPattern(t *testing.T, start, end string, frequency int) pattern.Pattern {
	t.Helper()
	return pattern.Pattern{
		EmployeeID: "emp-1",
		StartTime:  clock(t, start),
		EndTime:    clock(t, end),
		Frequency:  frequency,
		LastUsedAt: time.Now(),
	}
}

func testTemplate(t *testing.T, name, start, end string, usage int) template.Template {
	t.Helper()
	return template.Template{
		CompanyID:  "company-1",
		Name:       name,
		StartTime:  clock(t, start),
		EndTime:    clock(t, end),
		UsageCount: usage,
	}
}

func TestBlendSuggestions_PatternConfidenceScalesWithFrequency(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{testPattern(t, "09:00", "17:00", 5)}

	suggestions := BlendSuggestions(patterns, nil, nil, 5)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "09:00", suggestions[0].StartTime)
	assert.Equal(t, "17:00", suggestions[0].EndTime)
	assert.Equal(t, 50, suggestions[0].Confidence)
	assert.Equal(t, shift.SuggestionSourcePattern, suggestions[0].Source)
}

func TestBlendSuggestions_PatternConfidenceCapsAtHundred(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{testPattern(t, "09:00", "17:00", 42)}

	suggestions := BlendSuggestions(patterns, nil, nil, 5)

	require.Len(t, suggestions, 1)
	assert.Equal(t, 100, suggestions[0].Confidence)
}

func TestBlendSuggestions_RecentShiftsBackFillSparsePatterns(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{testPattern(t, "09:00", "17:00", 4)}
	recent := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "10:00", "18:00")}

	suggestions := BlendSuggestions(patterns, recent, nil, 5)

	require.Len(t, suggestions, 2)
	assert.Equal(t, shift.SuggestionSourcePattern, suggestions[0].Source)
	assert.Equal(t, shift.SuggestionSourceRecent, suggestions[1].Source)
	assert.Equal(t, 30, suggestions[1].Confidence)
}

func TestBlendSuggestions_RecentShiftsSkippedWithEnoughPatterns(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{
		testPattern(t, "09:00", "17:00", 8),
		testPattern(t, "10:00", "18:00", 6),
		testPattern(t, "12:00", "20:00", 2),
	}
	recent := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "06:00", "14:00")}

	suggestions := BlendSuggestions(patterns, recent, nil, 5)

	require.Len(t, suggestions, 3)
	for _, s := range suggestions {
		assert.Equal(t, shift.SuggestionSourcePattern, s.Source)
	}
}

func TestBlendSuggestions_DeduplicatesByTimePair(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{testPattern(t, "09:00", "17:00", 5)}
	recent := []shift.Shift{existingShift(t, "shift-1", "emp-1", "2025-08-11", "09:00", "17:00")}
	templates := []template.Template{testTemplate(t, "Day shift", "09:00", "17:00", 10)}

	suggestions := BlendSuggestions(patterns, recent, templates, 5)

	require.Len(t, suggestions, 1)
	assert.Equal(t, shift.SuggestionSourcePattern, suggestions[0].Source)
}

func TestBlendSuggestions_TemplatesFillRemainingSlots(t *testing.T) {
	t.Parallel()

	templates := []template.Template{
		testTemplate(t, "Day shift", "09:00", "17:00", 20),
		testTemplate(t, "Evening shift", "14:00", "22:00", 4),
	}

	suggestions := BlendSuggestions(nil, nil, templates, 5)

	require.Len(t, suggestions, 2)
	// Usage 20 caps at 80; usage 4 scores 20.
	assert.Equal(t, 80, suggestions[0].Confidence)
	assert.Equal(t, shift.SuggestionSourceTemplate, suggestions[0].Source)
	assert.Equal(t, 20, suggestions[1].Confidence)
}

func TestBlendSuggestions_SortedByConfidenceAndTruncated(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{
		testPattern(t, "06:00", "14:00", 2),
		testPattern(t, "09:00", "17:00", 9),
	}
	templates := []template.Template{testTemplate(t, "Evening shift", "14:00", "22:00", 10)}

	suggestions := BlendSuggestions(patterns, nil, templates, 2)

	require.Len(t, suggestions, 2)
	assert.Equal(t, 90, suggestions[0].Confidence)
	assert.GreaterOrEqual(t, suggestions[0].Confidence, suggestions[1].Confidence)
}

func TestBlendSuggestions_ZeroLimit(t *testing.T) {
	t.Parallel()

	patterns := []pattern.Pattern{testPattern(t, "09:00", "17:00", 5)}

	assert.Empty(t, BlendSuggestions(patterns, nil, nil, 0))
}
