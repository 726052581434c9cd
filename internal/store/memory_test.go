package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/internal/models"
)

func seedPair() []models.Job {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return []models.Job{
		{
			ID: 1, Company: "Acme", JobTitle: "PM",
			JobURL: "https://x.com/1", Status: models.StatusSaved,
			Source: models.SourceManual,
			DiscoveredAt: base.Add(2 * time.Hour), CreatedAt: base.Add(2 * time.Hour),
		},
		{
			ID: 2, Company: "Globex", JobTitle: "Head of Product",
			JobURL: "https://jobs.globex.com/hop", Status: models.StatusApplied,
			Source: models.SourceTracker,
			DiscoveredAt: base, CreatedAt: base,
		},
	}
}

func TestMemoryStoreCreateAssignsIncrementingIDs(t *testing.T) {
	s := NewMemoryStore(seedPair())
	ctx := context.Background()

	a := &models.Job{Company: "Initech", JobTitle: "Lead PM"}
	require.NoError(t, s.CreateJob(ctx, a))
	assert.Equal(t, uint(3), a.ID)

	b := &models.Job{Company: "Hooli", JobTitle: "VP Product"}
	require.NoError(t, s.CreateJob(ctx, b))
	assert.Equal(t, uint(4), b.ID)
}

func TestMemoryStoreListFilters(t *testing.T) {
	s := NewMemoryStore(seedPair())
	ctx := context.Background()

	t.Run("search matches company case-insensitively", func(t *testing.T) {
		jobs, err := s.ListJobs(ctx, JobFilter{Search: "acme"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].Company)
	})

	t.Run("search matches title substring", func(t *testing.T) {
		jobs, err := s.ListJobs(ctx, JobFilter{Search: "head of"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Globex", jobs[0].Company)
	})

	t.Run("status filter is exact", func(t *testing.T) {
		jobs, err := s.ListJobs(ctx, JobFilter{Status: models.StatusApplied})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, models.StatusApplied, jobs[0].Status)
	})

	t.Run("All disables the filter", func(t *testing.T) {
		jobs, err := s.ListJobs(ctx, JobFilter{Status: FilterAll, Source: FilterAll})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("source filter", func(t *testing.T) {
		jobs, err := s.ListJobs(ctx, JobFilter{Source: models.SourceTracker})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Globex", jobs[0].Company)
	})

	t.Run("discovered sort is newest first", func(t *testing.T) {
		jobs, err := s.ListJobs(ctx, JobFilter{Sort: SortDiscovered})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.True(t, jobs[0].DiscoveredAt.After(jobs[1].DiscoveredAt))
	})
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore(seedPair())
	ctx := context.Background()

	now := time.Now().UTC()
	job, err := s.UpdateJob(ctx, 1, map[string]any{
		"status":     models.StatusOffer,
		"updated_at": now,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffer, job.Status)
	assert.Equal(t, now, job.UpdatedAt)
	// untouched fields survive the merge
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "https://x.com/1", job.JobURL)

	_, err = s.UpdateJob(ctx, 999, map[string]any{"status": models.StatusOffer})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore(seedPair())
	ctx := context.Background()

	require.NoError(t, s.DeleteJob(ctx, 1))
	require.NoError(t, s.DeleteJob(ctx, 1))

	jobs, err := s.ListJobs(ctx, JobFilter{})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestMemoryStoreFindDuplicate(t *testing.T) {
	s := NewMemoryStore(seedPair())
	ctx := context.Background()

	t.Run("url match ignores case", func(t *testing.T) {
		dup, err := s.FindDuplicate(ctx, "HTTPS://X.COM/1", "Different Co", "Different Title")
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, uint(1), dup.ID)
	})

	t.Run("company and title match with a different url", func(t *testing.T) {
		dup, err := s.FindDuplicate(ctx, "https://other.example/99", "acme", "pm")
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, uint(1), dup.ID)
	})

	t.Run("no match", func(t *testing.T) {
		dup, err := s.FindDuplicate(ctx, "https://nowhere.example", "Nobody", "Nothing")
		require.NoError(t, err)
		assert.Nil(t, dup)
	})
}

func TestMemoryStoreStats(t *testing.T) {
	s := NewMemoryStore(seedPair())

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 1, stats.Applied)
	assert.Equal(t, 0, stats.Offers)
	assert.Equal(t, 1, stats.TrackerFinds)
}

func TestMemoryStoreRuns(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		run := &models.TrackerRun{
			RunAt:     time.Date(2026, 8, 20+i, 8, 0, 0, 0, time.UTC),
			JobsFound: i,
			Status:    models.RunStatusSuccess,
		}
		require.NoError(t, s.CreateRun(ctx, run))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// newest first
	assert.Equal(t, 2, runs[0].JobsFound)
	assert.Equal(t, 1, runs[1].JobsFound)
}
