package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ericfisherdev/salacious/internal/domain/model"
	"github.com/ericfisherdev/salacious/internal/domain/port/driven"
)

// reviewBodyHeader opens every submitted review.
const reviewBodyHeader = "Salacious has reviewed your code, please see inline comments."

// submit assembles the review body and the flattened comment list and posts
// one COMMENT review. A run that produced no comments at all is not
// submittable and only logs. A platform rejection is logged and terminal;
// there is no retry and no partial resubmission.
func (s *ReviewService) submit(ctx context.Context, run *model.ReviewRun) {
	if !run.HasComments() {
		slog.Error("no comments were generated, skipping review submission",
			"repo", run.Repo,
			"pr_number", run.Number,
		)
		return
	}

	comments := run.AllComments()
	submission := driven.ReviewSubmission{
		Body:     buildReviewBody(run.SkippedFiles()),
		Event:    "COMMENT",
		Comments: comments,
	}

	if err := s.github.SubmitReview(ctx, run.Repo, run.Number, submission); err != nil {
		slog.Error("failed to submit review",
			"repo", run.Repo,
			"pr_number", run.Number,
			"error", err,
		)
		return
	}

	slog.Info("submitted pull request review, Salacious B. Crumb signing off",
		"repo", run.Repo,
		"pr_number", run.Number,
		"comments", len(comments),
	)
}

// buildReviewBody renders the top-level review text: the fixed header plus,
// when any files were skipped, a bulleted list of their names.
func buildReviewBody(skipped []string) string {
	if len(skipped) == 0 {
		return reviewBodyHeader
	}

	var b strings.Builder
	b.WriteString(reviewBodyHeader)
	b.WriteString("\n\nList of skipped files:\n")
	for i, name := range skipped {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(name)
	}

	return b.String()
}
