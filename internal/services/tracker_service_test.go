package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/internal/models"
	"jobtracker/internal/search"
	"jobtracker/internal/store"
)

type fakeExtractor struct {
	jobs  []ExtractedJob
	calls int
	got   []search.Result
}

func (f *fakeExtractor) Extract(_ context.Context, results []search.Result) []ExtractedJob {
	f.calls++
	f.got = results
	return f.jobs
}

type fakeContacts struct {
	info      ContactInfo
	companies []string
}

func (f *fakeContacts) FindContacts(_ context.Context, company, _ string) ContactInfo {
	f.companies = append(f.companies, company)
	return f.info
}

var fiveQueries = []string{"q1", "q2", "q3", "q4", "q5"}

func TestTrackerRunEndToEnd(t *testing.T) {
	ctx := context.Background()

	st := store.NewMemoryStore(nil)
	existing := &models.Job{
		Company: "Existing Co", JobTitle: "PM", JobURL: "https://x.com/1",
		Status: models.StatusSaved, Source: models.SourceManual,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.CreateJob(ctx, existing))

	// 5 queries, 2 results each
	searcher := &fakeSearcher{results: []search.Result{
		{Title: "a", Link: "https://a.example", Snippet: "s"},
		{Title: "b", Link: "https://b.example", Snippet: "s"},
	}}
	extractor := &fakeExtractor{jobs: []ExtractedJob{
		// same URL as the existing job, different company/title case
		{Company: "EXISTING CO", JobTitle: "pm", JobURL: "https://X.com/1"},
		{Company: "Acme", JobTitle: "Head of Product", JobURL: "https://acme.example/jobs/1", KeyRequirements: "fintech"},
		{Company: "Globex", JobTitle: "VP Product", JobURL: "https://globex.example/jobs/2"},
	}}
	contacts := &fakeContacts{info: defaultContacts()}

	tracker := NewTrackerService(TrackerServiceOptions{
		Store:     st,
		Search:    searcher,
		Extractor: extractor,
		Contacts:  contacts,
		Queries:   fiveQueries,
	})

	report, err := tracker.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 10, report.JobsFound)
	assert.Equal(t, 2, report.NewJobsAdded)
	assert.Len(t, searcher.queries, 5)
	assert.Equal(t, 1, extractor.calls, "one extraction call over the aggregate")
	assert.Len(t, extractor.got, 10)
	assert.Equal(t, []string{"Acme", "Globex"}, contacts.companies,
		"duplicates must not trigger contact enrichment")

	joined := strings.Join(report.Logs, "\n")
	assert.Equal(t, 1, strings.Count(joined, "Duplicate skipped:"))
	assert.Equal(t, 2, strings.Count(joined, "Added:"))
	assert.Contains(t, joined, "Total search results: 10")
	assert.Contains(t, joined, "Extracted 3 relevant jobs")

	// inserted jobs carry tracker provenance and sentinel contacts
	jobs, err := st.ListJobs(ctx, store.JobFilter{Source: models.SourceTracker})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, models.StatusSaved, j.Status)
		assert.Equal(t, models.ContactNotFound, j.RecruiterName)
		assert.False(t, j.DiscoveredAt.IsZero())
	}

	// exactly one run record, success, full log
	runs, err := st.ListRuns(ctx, 20)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, models.RunStatusSuccess, runs[0].Status)
	assert.Equal(t, 10, runs[0].JobsFound)
	assert.Equal(t, 2, runs[0].NewJobsAdded)
	assert.Contains(t, runs[0].Log, "Duplicate skipped: EXISTING CO - pm")
}

func TestTrackerRunNoSearchResults(t *testing.T) {
	st := store.NewMemoryStore(nil)
	extractor := &fakeExtractor{}

	tracker := NewTrackerService(TrackerServiceOptions{
		Store:     st,
		Search:    &fakeSearcher{}, // unconfigured search: every query empty
		Extractor: extractor,
		Contacts:  &fakeContacts{info: defaultContacts()},
		Queries:   fiveQueries,
	})

	report, err := tracker.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.JobsFound)
	assert.Equal(t, 0, report.NewJobsAdded)
	assert.Equal(t, 0, extractor.calls, "extraction is skipped with zero results")
	assert.Contains(t, strings.Join(report.Logs, "\n"), "No search results found")

	runs, err := st.ListRuns(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, models.RunStatusSuccess, runs[0].Status)
}

// insertFailStore fails CreateJob for one company to prove a single bad
// insert doesn't abort the run.
type insertFailStore struct {
	*store.MemoryStore
	failCompany string
}

func (s *insertFailStore) CreateJob(ctx context.Context, job *models.Job) error {
	if job.Company == s.failCompany {
		return errors.New("connection reset")
	}
	return s.MemoryStore.CreateJob(ctx, job)
}

func TestTrackerRunContinuesPastInsertFailure(t *testing.T) {
	st := &insertFailStore{MemoryStore: store.NewMemoryStore(nil), failCompany: "Acme"}

	tracker := NewTrackerService(TrackerServiceOptions{
		Store:  st,
		Search: &fakeSearcher{results: []search.Result{{Title: "a", Link: "https://a.example"}}},
		Extractor: &fakeExtractor{jobs: []ExtractedJob{
			{Company: "Acme", JobTitle: "PM", JobURL: "https://acme.example/1"},
			{Company: "Globex", JobTitle: "VP Product", JobURL: "https://globex.example/2"},
		}},
		Contacts: &fakeContacts{info: defaultContacts()},
		Queries:  fiveQueries,
	})

	report, err := tracker.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.NewJobsAdded)
	joined := strings.Join(report.Logs, "\n")
	assert.Contains(t, joined, "Failed to add Acme")
	assert.Contains(t, joined, "Added: Globex - VP Product")
}

func TestTrackerRunRejectsConcurrentRuns(t *testing.T) {
	tracker := NewTrackerService(TrackerServiceOptions{
		Store:     store.NewMemoryStore(nil),
		Search:    &fakeSearcher{},
		Extractor: &fakeExtractor{},
		Contacts:  &fakeContacts{},
		Queries:   fiveQueries,
	})

	tracker.running.Store(true)
	_, err := tracker.Run(context.Background())
	assert.ErrorIs(t, err, ErrRunInProgress)

	tracker.running.Store(false)
	_, err = tracker.Run(context.Background())
	assert.NoError(t, err)
}

func TestTrackerRunRecordsErrorRunOnCancellation(t *testing.T) {
	st := store.NewMemoryStore(nil)
	tracker := NewTrackerService(TrackerServiceOptions{
		Store:     st,
		Search:    &fakeSearcher{},
		Extractor: &fakeExtractor{},
		Contacts:  &fakeContacts{},
		Queries:   fiveQueries,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tracker.Run(ctx)
	require.Error(t, err)

	runs, listErr := st.ListRuns(context.Background(), 20)
	require.NoError(t, listErr)
	require.Len(t, runs, 1)
	assert.Equal(t, models.RunStatusError, runs[0].Status)
	assert.Contains(t, runs[0].Log, "Error:")
}
