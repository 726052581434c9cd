package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"jobtracker/internal/search"
)

// textGenerator is the slice of LLMService the analysis services need.
// Tests substitute a canned implementation.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExtractedJob is one candidate posting pulled out of the search results.
type ExtractedJob struct {
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	JobURL          string `json:"job_url"`
	KeyRequirements string `json:"key_requirements"`
}

const extractionPromptTemplate = `You are a job search assistant. Analyze these search results and extract actual job postings relevant to the candidate below.

For each real job posting found, extract:
- company: The hiring company name
- job_title: The exact job title
- job_url: The application URL
- key_requirements: Key requirements (comma-separated)

Filter for relevance to this candidate profile:

%s

Search results:
%s

Respond ONLY with a JSON array of extracted jobs. If no relevant jobs found, respond with [].`

// ExtractionService turns a pile of search snippets into structured job
// candidates via one LLM call.
type ExtractionService struct {
	llm     textGenerator
	profile string
	logger  *slog.Logger
}

func NewExtractionService(llm textGenerator, profile string, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{llm: llm, profile: profile, logger: logger}
}

// Extract returns the relevant jobs found in the results, or an empty slice.
// The LLM is an untrusted text source: a failed call, a response without a
// bracketed array, or unparseable JSON all mean "nothing found".
func (s *ExtractionService) Extract(ctx context.Context, results []search.Result) []ExtractedJob {
	if len(results) == 0 {
		return nil
	}

	resultsJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		s.logger.Warn("marshal search results failed", "error", err)
		return nil
	}

	prompt := fmt.Sprintf(extractionPromptTemplate, s.profile, resultsJSON)
	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("job extraction failed", "error", err)
		return nil
	}

	span, ok := firstJSONArray(text)
	if !ok {
		s.logger.Warn("no JSON array in extraction response")
		return nil
	}

	var jobs []ExtractedJob
	if err := json.Unmarshal([]byte(span), &jobs); err != nil {
		s.logger.Warn("extraction response parse failed", "error", err)
		return nil
	}

	// Validation gate: a candidate without a company and URL can neither be
	// deduplicated nor inserted meaningfully.
	valid := jobs[:0]
	for _, j := range jobs {
		if j.Company == "" || j.JobURL == "" {
			continue
		}
		valid = append(valid, j)
	}
	return valid
}
