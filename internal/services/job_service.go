package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobtracker/internal/dtos"
	"jobtracker/internal/models"
	"jobtracker/internal/store"
)

// JobService implements the CRUD + stats surface over whichever JobStore
// was selected at startup.
type JobService struct {
	store store.JobStore
}

func NewJobService(st store.JobStore) *JobService {
	return &JobService{store: st}
}

func (s *JobService) List(ctx context.Context, f store.JobFilter) ([]models.Job, error) {
	return s.store.ListJobs(ctx, f)
}

// Create fills the defaults the client may omit: sentinel contact fields,
// status Saved, source manual, and all three timestamps.
func (s *JobService) Create(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	now := time.Now().UTC()
	job := &models.Job{
		Company:               req.Company,
		JobTitle:              req.JobTitle,
		JobURL:                req.JobURL,
		KeyRequirements:       req.KeyRequirements,
		RecruiterName:         orSentinel(req.RecruiterName),
		RecruiterLinkedin:     orSentinel(req.RecruiterLinkedin),
		HiringManagerName:     orSentinel(req.HiringManagerName),
		HiringManagerLinkedin: orSentinel(req.HiringManagerLinkedin),
		TailoredResume:        req.TailoredResume,
		Status:                req.Status,
		Source:                req.Source,
		DiscoveredAt:          now,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if job.Status == "" {
		job.Status = models.StatusSaved
	}
	if job.Source == "" {
		job.Source = models.SourceManual
	}

	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update merges only the fields present in the request and refreshes
// updated_at. Returns store.ErrNotFound for an absent id.
func (s *JobService) Update(ctx context.Context, id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	fields := req.Fields()
	fields["updated_at"] = time.Now().UTC()

	job, err := s.store.UpdateJob(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}
	return job, nil
}

// Delete is idempotent: an absent id is treated as already deleted.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteJob(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}

func (s *JobService) Stats(ctx context.Context) (*models.JobStats, error) {
	return s.store.Stats(ctx)
}

func orSentinel(v string) string {
	if v == "" {
		return models.ContactNotFound
	}
	return v
}
