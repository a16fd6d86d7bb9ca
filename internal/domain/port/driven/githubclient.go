package driven

import (
	"context"

	"github.com/ericfisherdev/salacious/internal/domain/model"
)

// ReviewSubmission carries everything SubmitReview posts: the top-level body,
// the review event, and the flattened inline comments.
type ReviewSubmission struct {
	// Body is the top-level review text shown above the inline comments.
	Body string
	// Event must be one of "APPROVE", "REQUEST_CHANGES", or "COMMENT".
	// This bot only ever submits "COMMENT" reviews.
	Event string
	// Comments are the inline comments, anchored by diff position.
	Comments []model.ReviewComment
}

// GitHubClient defines the driven port for the hosting platform. The surface
// is deliberately narrow: one pull request, its changed files, and a single
// review submission per run.
type GitHubClient interface {
	// FetchPullRequest retrieves a single pull request by repository full
	// name ("owner/repo") and number.
	FetchPullRequest(ctx context.Context, repoFullName string, prNumber int) (model.PullRequest, error)
	// ListChangedFiles retrieves every file changed by the pull request,
	// each carrying its diff patch when the platform provides one.
	ListChangedFiles(ctx context.Context, repoFullName string, prNumber int) ([]model.ChangedFile, error)
	// SubmitReview posts one review with inline comments on the pull request.
	SubmitReview(ctx context.Context, repoFullName string, prNumber int, submission ReviewSubmission) error
}
