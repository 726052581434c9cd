// Package scheduler fires the tracker once a day at a configured local
// time. It is a plain timer loop: errors are logged and the loop keeps
// going, and cancelling the context shuts it down.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"jobtracker/internal/services"
)

type Runner struct {
	tracker *services.TrackerService
	hour    int
	loc     *time.Location
	logger  *slog.Logger
}

func New(tracker *services.TrackerService, hour int, loc *time.Location, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{tracker: tracker, hour: hour, loc: loc, logger: logger}
}

// Start launches the loop in the background.
func (r *Runner) Start(ctx context.Context) {
	go r.loop(ctx)
}

func (r *Runner) loop(ctx context.Context) {
	for {
		next := nextFire(time.Now(), r.hour, r.loc)
		r.logger.Info("next scheduled tracker run", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("scheduler stopping", "reason", ctx.Err())
			return
		case <-timer.C:
		}

		r.logger.Info("running scheduled job search")
		runCtx, cancel := context.WithTimeout(ctx, 15*time.Minute)
		report, err := r.tracker.Run(runCtx)
		cancel()
		if err != nil {
			// Scheduled runs only log failures; the run record carries the
			// detail for the UI.
			r.logger.Error("scheduled tracker run failed", "error", err)
			continue
		}
		r.logger.Info("scheduled tracker run complete",
			"jobs_found", report.JobsFound, "new_jobs_added", report.NewJobsAdded)
	}
}

// nextFire returns the next wall-clock occurrence of hour:00 in loc that is
// strictly after now.
func nextFire(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
