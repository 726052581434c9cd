package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"jobtracker/internal/models"
	"jobtracker/internal/search"
)

// searcher is the slice of the search client the services need.
type searcher interface {
	Search(ctx context.Context, query string) []search.Result
}

// ContactInfo holds the best-effort recruiter and hiring-manager guesses for
// one job. Fields the pipeline cannot resolve carry the sentinel string.
type ContactInfo struct {
	RecruiterName         string `json:"recruiter_name"`
	RecruiterLinkedin     string `json:"recruiter_linkedin"`
	HiringManagerName     string `json:"hiring_manager_name"`
	HiringManagerLinkedin string `json:"hiring_manager_linkedin"`
}

func defaultContacts() ContactInfo {
	return ContactInfo{
		RecruiterName:         models.ContactNotFound,
		RecruiterLinkedin:     models.ContactNotFound,
		HiringManagerName:     models.ContactNotFound,
		HiringManagerLinkedin: models.ContactNotFound,
	}
}

type taggedResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Type    string `json:"type"`
}

const contactPromptTemplate = `From these search results, find the most likely recruiter and hiring manager for a "%s" role at %s in %s.

Search results:
%s

Return a JSON object with:
- recruiter_name: Full name of the recruiter/talent acquisition person (or "Not Found")
- recruiter_linkedin: Their LinkedIn URL (or "Not Found")
- hiring_manager_name: Full name of the likely hiring manager — a product leader at the company (or "Not Found")
- hiring_manager_linkedin: Their LinkedIn URL (or "Not Found")

Only include LinkedIn URLs that appear in the search results. Do not fabricate URLs.
Respond ONLY with the JSON object.`

// ContactService guesses a recruiter and hiring manager for a new job via
// two targeted searches and one LLM call.
type ContactService struct {
	search   searcher
	llm      textGenerator
	location string
	logger   *slog.Logger
}

func NewContactService(search searcher, llm textGenerator, location string, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{search: search, llm: llm, location: location, logger: logger}
}

// FindContacts never fails; anything it cannot establish stays "Not Found".
func (s *ContactService) FindContacts(ctx context.Context, company, jobTitle string) ContactInfo {
	contacts := defaultContacts()

	recruiterResults := s.search.Search(ctx,
		fmt.Sprintf("%s recruiter talent acquisition %s LinkedIn", company, s.location))
	hmResults := s.search.Search(ctx,
		fmt.Sprintf(`%s "Head of Product" OR "VP Product" OR "Director Product" %s LinkedIn`, company, s.location))

	tagged := make([]taggedResult, 0, len(recruiterResults)+len(hmResults))
	for _, r := range recruiterResults {
		tagged = append(tagged, taggedResult{Title: r.Title, Link: r.Link, Snippet: r.Snippet, Type: "recruiter"})
	}
	for _, r := range hmResults {
		tagged = append(tagged, taggedResult{Title: r.Title, Link: r.Link, Snippet: r.Snippet, Type: "hiring_manager"})
	}
	if len(tagged) == 0 {
		return contacts
	}

	resultsJSON, err := json.MarshalIndent(tagged, "", "  ")
	if err != nil {
		s.logger.Warn("marshal contact results failed", "company", company, "error", err)
		return contacts
	}

	prompt := fmt.Sprintf(contactPromptTemplate, jobTitle, company, s.location, resultsJSON)
	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("contact search failed", "company", company, "error", err)
		return contacts
	}

	span, ok := firstJSONObject(text)
	if !ok {
		return contacts
	}
	// Unmarshal over the defaults so missing fields keep the sentinel.
	if err := json.Unmarshal([]byte(span), &contacts); err != nil {
		s.logger.Warn("contact response parse failed", "company", company, "error", err)
		return defaultContacts()
	}
	normalizeContacts(&contacts)

	// The prompt tells the model not to invent URLs, but that is only an
	// instruction. Enforce it: a LinkedIn URL we never saw in the search
	// results is discarded.
	links := make(map[string]bool, len(tagged))
	for _, r := range tagged {
		links[strings.ToLower(r.Link)] = true
	}
	contacts.RecruiterLinkedin = verifyLink(contacts.RecruiterLinkedin, links)
	contacts.HiringManagerLinkedin = verifyLink(contacts.HiringManagerLinkedin, links)

	return contacts
}

func normalizeContacts(c *ContactInfo) {
	fix := func(v *string) {
		if strings.TrimSpace(*v) == "" {
			*v = models.ContactNotFound
		}
	}
	fix(&c.RecruiterName)
	fix(&c.RecruiterLinkedin)
	fix(&c.HiringManagerName)
	fix(&c.HiringManagerLinkedin)
}

func verifyLink(url string, seen map[string]bool) string {
	if url == models.ContactNotFound {
		return url
	}
	if seen[strings.ToLower(url)] {
		return url
	}
	return models.ContactNotFound
}
