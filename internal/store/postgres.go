package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobtracker/internal/models"
)

// PostgresStore is the gorm-backed JobStore.
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgres connects with the given DSN and migrates the schema.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Job{}, &models.TrackerRun{}); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStore wraps an existing gorm handle (used by tests).
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListJobs(ctx context.Context, f JobFilter) ([]models.Job, error) {
	q := s.db.WithContext(ctx).Model(&models.Job{})
	if f.Status != "" && f.Status != FilterAll {
		q = q.Where("status = ?", f.Status)
	}
	if f.Source != "" && f.Source != FilterAll {
		q = q.Where("source = ?", f.Source)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("company ILIKE ? OR job_title ILIKE ?", like, like)
	}
	if f.Sort == SortDiscovered {
		q = q.Order("discovered_at DESC")
	} else {
		q = q.Order("created_at DESC")
	}

	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *PostgresStore) CreateJob(ctx context.Context, job *models.Job) error {
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateJob(ctx context.Context, id uint, fields map[string]any) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load job %d: %w", id, err)
	}

	if err := s.db.WithContext(ctx).Model(&job).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}
	return &job, nil
}

func (s *PostgresStore) DeleteJob(ctx context.Context, id uint) error {
	// Deleting an absent id affects zero rows, which is exactly the
	// idempotency we want.
	if err := s.db.WithContext(ctx).Delete(&models.Job{}, id).Error; err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) Stats(ctx context.Context) (*models.JobStats, error) {
	var rows []struct {
		Status string
		Source string
	}
	if err := s.db.WithContext(ctx).Model(&models.Job{}).Select("status", "source").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load job stats: %w", err)
	}

	stats := &models.JobStats{Total: len(rows)}
	for _, r := range rows {
		countStatus(stats, r.Status)
		if r.Source == models.SourceTracker {
			stats.TrackerFinds++
		}
	}
	return stats, nil
}

func (s *PostgresStore) FindDuplicate(ctx context.Context, jobURL, company, title string) (*models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("LOWER(job_url) = LOWER(?) OR (LOWER(company) = LOWER(?) AND LOWER(job_title) = LOWER(?))",
			jobURL, company, title).
		Limit(1).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("duplicate lookup: %w", err)
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	return &jobs[0], nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, run *models.TrackerRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("insert tracker run: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, limit int) ([]models.TrackerRun, error) {
	var runs []models.TrackerRun
	err := s.db.WithContext(ctx).
		Order("run_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list tracker runs: %w", err)
	}
	return runs, nil
}

func countStatus(stats *models.JobStats, status string) {
	switch status {
	case models.StatusSaved:
		stats.Saved++
	case models.StatusApplied:
		stats.Applied++
	case models.StatusInterview:
		stats.Interviews++
	case models.StatusOffer:
		stats.Offers++
	case models.StatusRejected:
		stats.Rejected++
	}
}
