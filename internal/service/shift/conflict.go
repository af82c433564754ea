package shift

import (
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/shift"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/timeutil"
)

// Overlap severity thresholds, in overlapped minutes.
const (
	overlapHighMinutes   = 240
	overlapMediumMinutes = 60
)

// Adjacency: a gap under adjacentFlagMinutes is flagged for break review.
// Gaps between that and adjacentScanMinutes are examined but not reported.
const (
	adjacentFlagMinutes = 30
	adjacentScanMinutes = 60
)

// AnalyzeConflicts classifies a candidate against the employee's existing
// shifts on the same date. Classification priority is duplicate, then
// overlap, then adjacency; the report carries the highest-priority type
// found and the worst severity among conflicts of that type.
//
// Pure: callers supply the candidate set; nothing here touches storage.
func AnalyzeConflicts(c shift.Candidate, existing []shift.Shift) shift.ConflictReport {
	var report shift.ConflictReport
	suggestions := make(map[string]struct{})

	for _, s := range existing {
		annotated := shift.ConflictingShift{
			ShiftID:    s.ID,
			EmployeeID: s.EmployeeID,
			Date:       timeutil.FormatDate(s.Date),
			StartTime:  s.StartTime.String(),
			EndTime:    s.EndTime.String(),
		}

		switch {
		case s.StartTime == c.StartTime && s.EndTime == c.EndTime:
			annotated.Type = shift.ConflictDuplicate
			annotated.Severity = shift.SeverityHigh
			suggestions["Change the shift time or remove the duplicate entry"] = struct{}{}

		case timeutil.Overlap(c.StartTime, c.EndTime, s.StartTime, s.EndTime):
			annotated.Type = shift.ConflictOverlap
			overlapped := timeutil.OverlapMinutes(c.StartTime, c.EndTime, s.StartTime, s.EndTime)
			switch {
			case overlapped >= overlapHighMinutes:
				annotated.Severity = shift.SeverityHigh
				suggestions["Choose a different time range; most of this shift overlaps an existing one"] = struct{}{}
			case overlapped >= overlapMediumMinutes:
				annotated.Severity = shift.SeverityMedium
				suggestions["Adjust the start or end time to remove the overlap"] = struct{}{}
			default:
				annotated.Severity = shift.SeverityLow
				suggestions["Shift the start or end time slightly to remove the short overlap"] = struct{}{}
			}

		default:
			gap := timeutil.GapMinutes(c.StartTime, c.EndTime, s.StartTime, s.EndTime)
			if gap < 0 || gap > adjacentScanMinutes {
				continue
			}
			if gap >= adjacentFlagMinutes {
				continue
			}
			annotated.Type = shift.ConflictAdjacent
			annotated.Severity = shift.SeverityLow
			suggestions["Review the break time between these back-to-back shifts"] = struct{}{}
		}

		report.Conflicts = append(report.Conflicts, annotated)
	}

	if len(report.Conflicts) == 0 {
		return report
	}

	report.HasConflicts = true
	report.Type, report.Severity = dominantConflict(report.Conflicts)
	for s := range suggestions {
		report.Suggestions = append(report.Suggestions, s)
	}
	return report
}

// HasBlockingConflict reports whether the analysis found a duplicate or
// overlap. Adjacency is advisory and never blocks a write.
func HasBlockingConflict(report shift.ConflictReport) bool {
	for _, c := range report.Conflicts {
		if c.Type == shift.ConflictDuplicate || c.Type == shift.ConflictOverlap {
			return true
		}
	}
	return false
}

// BlockingShiftIDs returns the ids of the duplicate and overlapping shifts,
// the set the overwrite strategy soft-deletes.
func BlockingShiftIDs(report shift.ConflictReport) []string {
	var ids []string
	for _, c := range report.Conflicts {
		if c.Type == shift.ConflictDuplicate || c.Type == shift.ConflictOverlap {
			ids = append(ids, c.ShiftID)
		}
	}
	return ids
}

var conflictTypeRank = map[shift.ConflictType]int{
	shift.ConflictDuplicate: 3,
	shift.ConflictOverlap:   2,
	shift.ConflictAdjacent:  1,
}

var severityRank = map[shift.Severity]int{
	shift.SeverityHigh:   3,
	shift.SeverityMedium: 2,
	shift.SeverityLow:    1,
}

func dominantConflict(conflicts []shift.ConflictingShift) (shift.ConflictType, shift.Severity) {
	var topType shift.ConflictType
	for _, c := range conflicts {
		if conflictTypeRank[c.Type] > conflictTypeRank[topType] {
			topType = c.Type
		}
	}

	var topSeverity shift.Severity
	for _, c := range conflicts {
		if c.Type != topType {
			continue
		}
		if severityRank[c.Severity] > severityRank[topSeverity] {
			topSeverity = c.Severity
		}
	}
	return topType, topSeverity
}
