// Package search wraps the Serper.dev web-search API. The client never
// returns an error: an unconfigured key, a transport failure, or a bad
// response all degrade to an empty result list so the tracker keeps going.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const defaultEndpoint = "https://google.serper.dev/search"

// Result is one organic search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchRequest struct {
	Query    string `json:"q"`
	Location string `json:"location,omitempty"`
	Num      int    `json:"num"`
}

type searchResponse struct {
	Organic []Result `json:"organic"`
}

// Client issues keyword queries against Serper.
type Client struct {
	apiKey   string
	location string
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

func NewClient(apiKey, location string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:   apiKey,
		location: location,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 20 * time.Second},
		logger:   logger,
	}
}

// Search runs one query and returns up to 10 organic results. Empty slice
// on any failure.
func (c *Client) Search(ctx context.Context, query string) []Result {
	if c.apiKey == "" {
		c.logger.Warn("SERPER_API_KEY not set, skipping web search")
		return nil
	}

	body, err := json.Marshal(searchRequest{Query: query, Location: c.location, Num: 10})
	if err != nil {
		c.logger.Warn("search request marshal failed", "query", query, "error", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("search request build failed", "query", query, "error", err)
		return nil
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("search failed", "query", query, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Warn("search returned error status", "query", query, "status", resp.StatusCode)
		return nil
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("search response decode failed", "query", query, "error", err)
		return nil
	}
	return parsed.Organic
}
