package services

import (
	"context"

	"jobtracker/internal/search"
)

// fakeGenerator cans the LLM response.
type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

// fakeSearcher returns a fixed result set per query, or byQuery overrides.
type fakeSearcher struct {
	results []search.Result
	byQuery map[string][]search.Result
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) []search.Result {
	f.queries = append(f.queries, query)
	if f.byQuery != nil {
		return f.byQuery[query]
	}
	return f.results
}
