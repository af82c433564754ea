package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/pattern"
)

// PatternJobs removes shift patterns that carry no suggestion value anymore:
// rarely used and not seen for a long time.
type PatternJobs struct {
	patternRepo  pattern.Repository
	maxFrequency int
	maxAgeDays   int
}

func NewPatternJobs(patternRepo pattern.Repository, maxFrequency, maxAgeDays int) *PatternJobs {
	return &PatternJobs{
		patternRepo:  patternRepo,
		maxFrequency: maxFrequency,
		maxAgeDays:   maxAgeDays,
	}
}

func (j *PatternJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("sweep_stale_shift_patterns", interval, j.SweepStalePatterns)
}

func (j *PatternJobs) SweepStalePatterns(ctx context.Context) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -j.maxAgeDays)

	removed, err := j.patternRepo.DeleteStale(ctx, j.maxFrequency, cutoff)
	if err != nil {
		return err
	}

	if removed > 0 {
		slog.Info("Cron: Removed stale shift patterns", "count", removed, "cutoff", cutoff.Format("2006-01-02"))
	}
	return nil
}
