package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the app reads from the environment, parsed once at
// startup. Every external dependency is optional: with no DATABASE_URL we
// fall back to the in-memory seed store, and a missing search or LLM key
// just degrades that client to empty results.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	SerperAPIKey string `env:"SERPER_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	Port int `env:"PORT" envDefault:"3001"`

	// Region bias passed to the search provider on every query.
	SearchLocation string `env:"SEARCH_LOCATION" envDefault:"Singapore"`

	// Daily tracker schedule: local hour in the given IANA zone.
	TrackerHour     int    `env:"TRACKER_HOUR" envDefault:"8"`
	TrackerTimezone string `env:"TRACKER_TIMEZONE" envDefault:"Asia/Singapore"`

	// The query list and candidate profile are data, not logic. They can be
	// swapped per profile/region without touching the tracker.
	SearchQueries    []string `env:"SEARCH_QUERIES" envSeparator:"|"`
	CandidateProfile string   `env:"CANDIDATE_PROFILE"`
}

// Load reads .env (best effort) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if len(cfg.SearchQueries) == 0 {
		cfg.SearchQueries = append([]string(nil), DefaultSearchQueries...)
	}
	if cfg.CandidateProfile == "" {
		cfg.CandidateProfile = DefaultCandidateProfile
	}
	return cfg, nil
}

// HasDatabase reports whether a persistent store is configured. The tracker
// and its scheduler only run against a real database.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
