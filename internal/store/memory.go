package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jobtracker/internal/models"
)

// MemoryStore is the no-database fallback: a mutex-guarded slice that keeps
// the app usable with seed data. Single process only; last write wins on
// concurrent updates.
type MemoryStore struct {
	mu     sync.Mutex
	jobs   []models.Job // newest first
	runs   []models.TrackerRun
	nextID uint
}

// NewMemoryStore seeds the store and primes the id counter at max(seed)+1.
func NewMemoryStore(seed []models.Job) *MemoryStore {
	s := &MemoryStore{jobs: append([]models.Job(nil), seed...), nextID: 1}
	for _, j := range s.jobs {
		if j.ID >= s.nextID {
			s.nextID = j.ID + 1
		}
	}
	return s
}

func (s *MemoryStore) ListJobs(_ context.Context, f JobFilter) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Job, 0, len(s.jobs))
	search := strings.ToLower(f.Search)
	for _, j := range s.jobs {
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Company), search) &&
			!strings.Contains(strings.ToLower(j.JobTitle), search) {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && j.Status != f.Status {
			continue
		}
		if f.Source != "" && f.Source != FilterAll && j.Source != f.Source {
			continue
		}
		out = append(out, j)
	}

	sort.SliceStable(out, func(i, k int) bool {
		if f.Sort == SortDiscovered {
			return out[i].DiscoveredAt.After(out[k].DiscoveredAt)
		}
		return out[i].CreatedAt.After(out[k].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) CreateJob(_ context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.nextID
	s.nextID++
	s.jobs = append([]models.Job{*job}, s.jobs...)
	return nil
}

func (s *MemoryStore) UpdateJob(_ context.Context, id uint, fields map[string]any) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		applyFields(&s.jobs[i], fields)
		job := s.jobs[i]
		return &job, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteJob(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.jobs[:0]
	for _, j := range s.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	s.jobs = kept
	return nil
}

func (s *MemoryStore) Stats(_ context.Context) (*models.JobStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.JobStats{Total: len(s.jobs)}
	for _, j := range s.jobs {
		countStatus(stats, j.Status)
		if j.Source == models.SourceTracker {
			stats.TrackerFinds++
		}
	}
	return stats, nil
}

func (s *MemoryStore) FindDuplicate(_ context.Context, jobURL, company, title string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if strings.EqualFold(j.JobURL, jobURL) ||
			(strings.EqualFold(j.Company, company) && strings.EqualFold(j.JobTitle, title)) {
			job := j
			return &job, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateRun(_ context.Context, run *models.TrackerRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run.ID = uint(len(s.runs) + 1)
	s.runs = append([]models.TrackerRun{*run}, s.runs...)
	return nil
}

func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]models.TrackerRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > len(s.runs) {
		limit = len(s.runs)
	}
	return append([]models.TrackerRun(nil), s.runs[:limit]...), nil
}

// applyFields mirrors the column names gorm uses so both stores accept the
// same update maps.
func applyFields(job *models.Job, fields map[string]any) {
	for col, v := range fields {
		switch col {
		case "company":
			job.Company = asString(v)
		case "job_title":
			job.JobTitle = asString(v)
		case "job_url":
			job.JobURL = asString(v)
		case "key_requirements":
			job.KeyRequirements = asString(v)
		case "recruiter_name":
			job.RecruiterName = asString(v)
		case "recruiter_linkedin":
			job.RecruiterLinkedin = asString(v)
		case "hiring_manager_name":
			job.HiringManagerName = asString(v)
		case "hiring_manager_linkedin":
			job.HiringManagerLinkedin = asString(v)
		case "tailored_resume":
			job.TailoredResume = asString(v)
		case "status":
			job.Status = asString(v)
		case "source":
			job.Source = asString(v)
		case "updated_at":
			if t, ok := v.(time.Time); ok {
				job.UpdatedAt = t
			}
		}
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
