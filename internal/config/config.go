// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultModel         = "gpt-3.5-turbo"
	defaultMaxPatchBytes = 4097
	defaultOpenAIBaseURL = "https://api.openai.com/v1/chat/completions"
)

// ErrNotPullRequest reports that GITHUB_REF does not point at a pull request
// (a branch push, a tag build). The run has nothing to review and should end
// successfully without touching either API.
var ErrNotPullRequest = errors.New("GITHUB_REF does not reference a pull request")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubToken   string
	OpenAIKey     string
	Repo          string // "owner/repo" full name from GITHUB_REPOSITORY.
	PRNumber      int    // Parsed from GITHUB_REF.
	Model         string
	MaxPatchBytes int
	OpenAIBaseURL string
	LogLevel      slog.Level
}

// Load reads configuration from environment variables and returns a validated
// Config. GITHUB_TOKEN, OPENAI_API_KEY, GITHUB_REF, and GITHUB_REPOSITORY are
// required; the first three are provided by the CI runner, the key comes from
// a repository secret. Optional variables with defaults: SALACIOUS_MODEL
// (gpt-3.5-turbo), SALACIOUS_MAX_PATCH_BYTES (4097),
// SALACIOUS_OPENAI_BASE_URL (the public chat completions endpoint), and
// SALACIOUS_LOG_LEVEL (info).
func Load() (*Config, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable must be set")
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable must be set")
	}

	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo == "" {
		return nil, errors.New("GITHUB_REPOSITORY environment variable must be set")
	}

	ref := os.Getenv("GITHUB_REF")
	if ref == "" {
		return nil, errors.New("GITHUB_REF environment variable must be set")
	}
	prNumber, err := ParsePullRef(ref)
	if err != nil {
		// May be ErrNotPullRequest, which the caller treats as a no-op run.
		return nil, err
	}

	model := defaultModel
	if v, ok := os.LookupEnv("SALACIOUS_MODEL"); ok && v != "" {
		model = v
	}

	maxPatchBytes := defaultMaxPatchBytes
	if v, ok := os.LookupEnv("SALACIOUS_MAX_PATCH_BYTES"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("SALACIOUS_MAX_PATCH_BYTES has invalid value %q", v)
		}
		maxPatchBytes = parsed
	}

	baseURL := defaultOpenAIBaseURL
	if v, ok := os.LookupEnv("SALACIOUS_OPENAI_BASE_URL"); ok && v != "" {
		baseURL = v
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("SALACIOUS_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("SALACIOUS_LOG_LEVEL has invalid value %q: %w", v, err)
		}
	}

	return &Config{
		GitHubToken:   token,
		OpenAIKey:     openAIKey,
		Repo:          repo,
		PRNumber:      prNumber,
		Model:         model,
		MaxPatchBytes: maxPatchBytes,
		OpenAIBaseURL: baseURL,
		LogLevel:      logLevel,
	}, nil
}

// ParsePullRef extracts the pull request number from a GitHub Actions ref
// such as "refs/pull/42/merge". A ref without a "pull" segment returns
// ErrNotPullRequest; a ref with a "pull" segment but no usable number after
// it is malformed and returns an ordinary error.
func ParsePullRef(ref string) (int, error) {
	parts := strings.Split(ref, "/")
	for i, part := range parts {
		if part != "pull" {
			continue
		}
		if i+1 < len(parts) {
			if number, err := strconv.Atoi(parts[i+1]); err == nil {
				return number, nil
			}
		}
		return 0, fmt.Errorf("GITHUB_REF %q does not contain a valid pull request number", ref)
	}
	return 0, ErrNotPullRequest
}
