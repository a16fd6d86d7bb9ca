// Package application contains the use-case orchestration for a review run.
package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/salacious/internal/domain/model"
	"github.com/ericfisherdev/salacious/internal/domain/port/driven"
)

// ReviewService drives one pull request review end to end: classify each
// changed file, request commentary from the completion API with a single
// retry, and submit the aggregate as one COMMENT review. It depends only on
// port interfaces.
type ReviewService struct {
	github        driven.GitHubClient
	completer     driven.CompletionClient
	maxPatchBytes int
}

// NewReviewService creates a new ReviewService with the required dependencies.
func NewReviewService(github driven.GitHubClient, completer driven.CompletionClient, maxPatchBytes int) *ReviewService {
	return &ReviewService{
		github:        github,
		completer:     completer,
		maxPatchBytes: maxPatchBytes,
	}
}

// Run reviews one pull request and returns the per-file outcomes. Completion
// failures are contained per file by the retry-then-skip policy, and a
// rejected submission is logged and terminal, so neither fails the run. Only
// failing to reach the pull request or its file list returns an error.
func (s *ReviewService) Run(ctx context.Context, repoFullName string, prNumber int) (*model.ReviewRun, error) {
	pr, err := s.github.FetchPullRequest(ctx, repoFullName, prNumber)
	if err != nil {
		return nil, err
	}

	slog.Info("reviewing pull request",
		"repo", repoFullName,
		"pr_number", pr.Number,
		"title", pr.Title,
		"author", pr.Author,
		"changed_files", pr.ChangedFiles,
	)

	files, err := s.github.ListChangedFiles(ctx, repoFullName, prNumber)
	if err != nil {
		return nil, err
	}

	run := &model.ReviewRun{
		Repo:    repoFullName,
		Number:  prNumber,
		Results: make([]model.FileReview, 0, len(files)),
	}

	for _, file := range files {
		run.Results = append(run.Results, s.reviewFile(ctx, file))
	}

	slog.Info("analysis complete, submitting review", "repo", repoFullName, "pr_number", prNumber)

	if skipped := run.SkippedFiles(); len(skipped) > 0 {
		slog.Error("unable to review some files", "files", skipped)
	}

	s.submit(ctx, run)

	return run, nil
}

// reviewFile produces exactly one FileReview per changed file: a skip verdict
// from the classifier, or the outcome of at most two completion attempts.
func (s *ReviewService) reviewFile(ctx context.Context, file model.ChangedFile) model.FileReview {
	slog.Info("reviewing diff", "file", file.Filename)

	switch classifyFile(file, s.maxPatchBytes) {
	case model.FileSkippedEmpty:
		slog.Warn("skipping file with no diff text", "file", file.Filename)
		return model.FileReview{Filename: file.Filename, Status: model.FileSkippedEmpty}
	case model.FileSkippedTooLarge:
		slog.Warn("skipping oversized diff, consider smaller commits",
			"file", file.Filename,
			"size", file.PatchSize(),
			"limit", s.maxPatchBytes,
		)
		return model.FileReview{Filename: file.Filename, Status: model.FileSkippedTooLarge}
	}

	comments, err := s.requestReview(ctx, file)
	if err != nil {
		slog.Error("diff review failed, trying again", "file", file.Filename, "error", err)

		comments, err = s.requestReview(ctx, file)
		if err != nil {
			slog.Error("diff review failed twice, skipping file", "file", file.Filename, "error", err)
			return model.FileReview{Filename: file.Filename, Status: model.FileFailed}
		}
	}

	slog.Info("reviewed diff", "file", file.Filename, "comments", len(comments))

	return model.FileReview{
		Filename: file.Filename,
		Status:   model.FileReviewed,
		Comments: comments,
	}
}
