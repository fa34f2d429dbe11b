// Package config loads the runtime configuration from the environment.
package config

import (
	"errors"
	"os"
)

// DefaultBaseURL is the public GitHub REST endpoint. GITHUB_API_URL
// overrides it for enterprise hosts.
const DefaultBaseURL = "https://api.github.com"

// defaultOrg owns the repositories whose commit messages carry
// happiness scores.
const defaultOrg = "otter"

// defaultRepos is the fixed fleet every aggregation runs across.
var defaultRepos = []string{
	"otter-api",
	"otter-web",
	"otter-mobile",
	"otter-pipeline",
	"otter-infra",
	"otter-tools",
}

// ErrMissingToken is returned when GITHUB_TOKEN is not set. Startup
// fails on it; no request is ever sent without a token.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is not set")

// Config carries everything the fetch pipeline needs, resolved once at
// startup.
type Config struct {
	Token   string
	BaseURL string
	Org     string
	Repos   []string
}

// Load reads the configuration from the environment. The token is
// required; everything else falls back to defaults.
func Load() (*Config, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Config{
		Token:   token,
		BaseURL: getEnv("GITHUB_API_URL", DefaultBaseURL),
		Org:     defaultOrg,
		Repos:   defaultRepos,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
