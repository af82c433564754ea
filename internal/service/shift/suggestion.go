package shift

import (
	"sort"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/pattern"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/template"
)

const (
	patternConfidencePerUse  = 10
	patternConfidenceCap     = 100
	recentShiftConfidence    = 30
	templateConfidencePerUse = 5
	templateConfidenceCap    = 80

	// Recent shifts only back-fill when the employee has fewer established
	// patterns than this.
	minPatternSuggestions = 3
)

// BlendSuggestions ranks shift time suggestions for one employee from three
// sources: the employee's own usage patterns, their recent distinct shifts,
// and the company's most-used templates. Sources are consulted in that
// order, deduplicated by exact (start, end) pair, until limit is filled;
// the final list is ordered by confidence descending.
func BlendSuggestions(patterns []pattern.Pattern, recent []shift.Shift, templates []template.Template, limit int) []shift.Suggestion {
	if limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var suggestions []shift.Suggestion

	add := func(start, end string, confidence int, source string) {
		if len(suggestions) >= limit {
			return
		}
		key := start + "-" + end
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, shift.Suggestion{
			StartTime:  start,
			EndTime:    end,
			Confidence: confidence,
			Source:     source,
		})
	}

	patternCount := 0
	for _, p := range patterns {
		confidence := p.Frequency * patternConfidencePerUse
		if confidence > patternConfidenceCap {
			confidence = patternConfidenceCap
		}
		add(p.StartTime.String(), p.EndTime.String(), confidence, shift.SuggestionSourcePattern)
		patternCount++
	}

	if patternCount < minPatternSuggestions {
		for _, s := range recent {
			add(s.StartTime.String(), s.EndTime.String(), recentShiftConfidence, shift.SuggestionSourceRecent)
		}
	}

	if len(suggestions) < limit {
		for _, t := range templates {
			confidence := t.UsageCount * templateConfidencePerUse
			if confidence > templateConfidenceCap {
				confidence = templateConfidenceCap
			}
			add(t.StartTime.String(), t.EndTime.String(), confidence, shift.SuggestionSourceTemplate)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
