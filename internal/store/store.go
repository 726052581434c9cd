// Package store holds the persistence layer behind a single JobStore
// interface: a gorm/Postgres implementation for real deployments and an
// in-memory one seeded with demo data for running without a database.
package store

import (
	"context"
	"errors"

	"jobtracker/internal/models"
)

// ErrNotFound is returned when an id does not exist. Only Update surfaces
// it to the client; Delete swallows it (absent id is a successful delete).
var ErrNotFound = errors.New("job not found")

// FilterAll is the filter value meaning "no filter" for status and source.
const FilterAll = "All"

// SortDiscovered orders listings by discovery time instead of creation time.
const SortDiscovered = "discovered"

// JobFilter narrows ListJobs. Zero values mean unfiltered.
type JobFilter struct {
	Search string // case-insensitive substring on company OR job_title
	Status string // exact match; "" or "All" disables
	Source string // exact match; "" or "All" disables
	Sort   string // "discovered" → discovered_at desc, else created_at desc
}

// JobStore is the persistence contract the services are written against.
type JobStore interface {
	ListJobs(ctx context.Context, f JobFilter) ([]models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error
	// UpdateJob merges the given column→value map into the record and
	// returns the result, or ErrNotFound.
	UpdateJob(ctx context.Context, id uint, fields map[string]any) (*models.Job, error)
	// DeleteJob is idempotent: deleting an absent id is not an error.
	DeleteJob(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.JobStats, error)

	// FindDuplicate returns an existing job matching the URL, or matching
	// both company and title, comparing case-insensitively. (nil, nil)
	// means no duplicate.
	FindDuplicate(ctx context.Context, jobURL, company, title string) (*models.Job, error)

	CreateRun(ctx context.Context, run *models.TrackerRun) error
	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]models.TrackerRun, error)
}
