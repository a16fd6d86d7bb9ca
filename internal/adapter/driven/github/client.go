// Package github implements the GitHubClient port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/salacious/internal/domain/model"
	"github.com/ericfisherdev/salacious/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchPullRequest retrieves a single pull request by number and maps it to
// the domain model.
func (c *Client) FetchPullRequest(ctx context.Context, repoFullName string, prNumber int) (model.PullRequest, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return model.PullRequest{}, err
	}

	pr, resp, err := c.gh.PullRequests.Get(ctx, owner, repo, prNumber)
	if err != nil {
		return model.PullRequest{}, fmt.Errorf("fetching pull request %s#%d: %w", repoFullName, prNumber, err)
	}

	logRateLimit(resp, repoFullName+"/pull", 0, 1)

	return mapPullRequest(pr, repoFullName), nil
}

// ListChangedFiles retrieves every file changed by the pull request, each with
// its diff patch when the API provides one. It handles pagination
// automatically and maps go-github types to domain model types.
func (c *Client) ListChangedFiles(ctx context.Context, repoFullName string, prNumber int) ([]model.ChangedFile, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.ListOptions{PerPage: 100}
	var allFiles []model.ChangedFile

	for {
		files, resp, err := c.gh.PullRequests.ListFiles(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("listing changed files for %s#%d (page %d): %w", repoFullName, prNumber, opts.Page, err)
		}

		logRateLimit(resp, repoFullName+"/files", opts.Page, len(files))

		for _, f := range files {
			allFiles = append(allFiles, mapChangedFile(f))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allFiles, nil
}

// mapChangedFile converts a go-github CommitFile to a domain model ChangedFile.
// Patch is carried through as a pointer: GitHub omits the field for binary
// files and rename-only changes, and that absence drives the skip decision.
func mapChangedFile(f *gh.CommitFile) model.ChangedFile {
	return model.ChangedFile{
		Filename: f.GetFilename(),
		Patch:    f.Patch,
	}
}

// mapPullRequest converts a go-github PullRequest to a domain model PullRequest.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapPullRequest(pr *gh.PullRequest, repoFullName string) model.PullRequest {
	return model.PullRequest{
		Number:       pr.GetNumber(),
		RepoFullName: repoFullName,
		Title:        pr.GetTitle(),
		Author:       pr.GetUser().GetLogin(),
		HeadSHA:      pr.GetHead().GetSHA(),
		ChangedFiles: pr.GetChangedFiles(),
		URL:          pr.GetHTMLURL(),
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// splitRepo splits a "owner/repo" string into its two components.
func splitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
