package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"jobtracker/internal/models"
	"jobtracker/internal/search"
	"jobtracker/internal/store"
)

// ErrRunInProgress means another tracker run is already executing. Two
// concurrent runs would race each other's duplicate checks and insert the
// same jobs twice, so only one run is allowed at a time.
var ErrRunInProgress = errors.New("tracker run already in progress")

// RunReport is what POST /api/tracker/run returns to the caller.
type RunReport struct {
	JobsFound    int      `json:"jobs_found"`
	NewJobsAdded int      `json:"new_jobs_added"`
	Logs         []string `json:"logs"`
}

type jobExtractor interface {
	Extract(ctx context.Context, results []search.Result) []ExtractedJob
}

type contactFinder interface {
	FindContacts(ctx context.Context, company, jobTitle string) ContactInfo
}

// TrackerService runs the search → extract → dedup → enrich → insert
// pipeline. Every step is sequential and best-effort: upstream clients
// degrade to empty results, and a single failed insert never aborts the run.
type TrackerService struct {
	store     store.JobStore
	search    searcher
	extractor jobExtractor
	contacts  contactFinder
	queries   []string
	logger    *slog.Logger

	running atomic.Bool
}

type TrackerServiceOptions struct {
	Store     store.JobStore
	Search    searcher
	Extractor jobExtractor
	Contacts  contactFinder
	Queries   []string
	Logger    *slog.Logger
}

func NewTrackerService(opts TrackerServiceOptions) *TrackerService {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &TrackerService{
		store:     opts.Store,
		search:    opts.Search,
		extractor: opts.Extractor,
		contacts:  opts.Contacts,
		queries:   opts.Queries,
		logger:    opts.Logger,
	}
}

// Run executes one tracker pass and always records a TrackerRun, whether the
// pass succeeded or died partway. On failure the error is returned after the
// run record is written.
func (t *TrackerService) Run(ctx context.Context) (*RunReport, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer t.running.Store(false)

	t.logger.Info("starting job search run")
	var logs []string
	found, added, runErr := t.runPipeline(ctx, &logs)

	status := models.RunStatusSuccess
	if runErr != nil {
		status = models.RunStatusError
		logs = append(logs, fmt.Sprintf("Error: %v", runErr))
	}

	run := &models.TrackerRun{
		RunAt:        time.Now().UTC(),
		JobsFound:    found,
		NewJobsAdded: added,
		Status:       status,
		Log:          strings.Join(logs, "\n"),
	}
	// The audit record is best-effort too; losing it should not turn a
	// successful pass into a failed one.
	if err := t.store.CreateRun(context.WithoutCancel(ctx), run); err != nil {
		t.logger.Error("failed to record tracker run", "error", err)
	}

	if runErr != nil {
		return nil, runErr
	}
	t.logger.Info("job search run complete", "jobs_found", found, "new_jobs_added", added)
	return &RunReport{JobsFound: found, NewJobsAdded: added, Logs: logs}, nil
}

func (t *TrackerService) runPipeline(ctx context.Context, logs *[]string) (found, added int, err error) {
	// Step 1: gather all search results across the query list.
	var all []search.Result
	for _, query := range t.queries {
		if err := ctx.Err(); err != nil {
			return len(all), 0, err
		}
		results := t.search.Search(ctx, query)
		all = append(all, results...)
		*logs = append(*logs, fmt.Sprintf("Query %q: %d results", query, len(results)))
	}
	found = len(all)
	*logs = append(*logs, fmt.Sprintf("Total search results: %d", found))

	if found == 0 {
		*logs = append(*logs, "No search results found. Check API key configuration.")
		return found, 0, nil
	}

	// Step 2: one extraction call over the full aggregate.
	extracted := t.extractor.Extract(ctx, all)
	*logs = append(*logs, fmt.Sprintf("Extracted %d relevant jobs", len(extracted)))

	// Step 3: dedup, enrich, insert.
	for _, job := range extracted {
		if err := ctx.Err(); err != nil {
			return found, added, err
		}

		existing, err := t.store.FindDuplicate(ctx, job.JobURL, job.Company, job.JobTitle)
		if err != nil {
			// Can't tell if it's a duplicate; skipping beats inserting twice.
			*logs = append(*logs, fmt.Sprintf("Duplicate check failed for %s: %v", job.Company, err))
			continue
		}
		if existing != nil {
			*logs = append(*logs, fmt.Sprintf("Duplicate skipped: %s - %s", job.Company, job.JobTitle))
			continue
		}

		*logs = append(*logs, fmt.Sprintf("Searching contacts for %s...", job.Company))
		contacts := t.contacts.FindContacts(ctx, job.Company, job.JobTitle)
		*logs = append(*logs, fmt.Sprintf("  Recruiter: %s, HM: %s", contacts.RecruiterName, contacts.HiringManagerName))

		now := time.Now().UTC()
		record := &models.Job{
			Company:               job.Company,
			JobTitle:              job.JobTitle,
			JobURL:                job.JobURL,
			KeyRequirements:       job.KeyRequirements,
			RecruiterName:         contacts.RecruiterName,
			RecruiterLinkedin:     contacts.RecruiterLinkedin,
			HiringManagerName:     contacts.HiringManagerName,
			HiringManagerLinkedin: contacts.HiringManagerLinkedin,
			Status:                models.StatusSaved,
			Source:                models.SourceTracker,
			DiscoveredAt:          now,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := t.store.CreateJob(ctx, record); err != nil {
			*logs = append(*logs, fmt.Sprintf("Failed to add %s: %v", job.Company, err))
			continue
		}
		added++
		*logs = append(*logs, fmt.Sprintf("Added: %s - %s", job.Company, job.JobTitle))
	}

	return found, added, nil
}
