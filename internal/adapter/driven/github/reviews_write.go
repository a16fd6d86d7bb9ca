package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/salacious/internal/domain/port/driven"
)

// SubmitReview posts one review with inline comments on a pull request.
// Comment positions are passed through untranslated; GitHub rejects the whole
// review with a 422 when any position does not exist in the diff.
func (c *Client) SubmitReview(ctx context.Context, repoFullName string, prNumber int, submission driven.ReviewSubmission) error {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return err
	}

	comments := make([]*gh.DraftReviewComment, 0, len(submission.Comments))
	for _, comment := range submission.Comments {
		comments = append(comments, &gh.DraftReviewComment{
			Path:     gh.Ptr(comment.Path),
			Position: gh.Ptr(comment.Position),
			Body:     gh.Ptr(comment.Body),
		})
	}

	review := &gh.PullRequestReviewRequest{
		Event:    gh.Ptr(submission.Event),
		Body:     gh.Ptr(submission.Body),
		Comments: comments,
	}

	_, resp, err := c.gh.PullRequests.CreateReview(ctx, owner, repo, prNumber, review)
	if err != nil {
		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnprocessableEntity {
			return fmt.Errorf("github rejected the review for %s#%d (invalid diff position or missing permission): %w", repoFullName, prNumber, err)
		}
		return fmt.Errorf("creating review for %s#%d: %w", repoFullName, prNumber, err)
	}

	logRateLimit(resp, repoFullName+"/create-review", 0, len(comments))
	return nil
}
