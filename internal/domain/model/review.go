package model

// FileReview records the outcome for a single changed file. Every changed
// file in a run produces exactly one FileReview, so the run's results
// partition the file list.
type FileReview struct {
	Filename string
	Status   FileStatus
	Comments []ReviewComment // Populated only when Status is FileReviewed.
}

// ReviewRun accumulates the per-file outcomes for one pull request review.
type ReviewRun struct {
	Repo    string
	Number  int
	Results []FileReview
}

// SkippedFiles returns the names of every file that stayed out of the
// review, in file-processing order.
func (r *ReviewRun) SkippedFiles() []string {
	var skipped []string
	for _, result := range r.Results {
		if result.Status.Skipped() {
			skipped = append(skipped, result.Filename)
		}
	}
	return skipped
}

// AllComments flattens the per-file comment lists of successfully reviewed
// files into one list, preserving file-processing order.
func (r *ReviewRun) AllComments() []ReviewComment {
	var comments []ReviewComment
	for _, result := range r.Results {
		if result.Status == FileReviewed {
			comments = append(comments, result.Comments...)
		}
	}
	return comments
}

// HasComments reports whether any reviewed file produced at least one comment.
func (r *ReviewRun) HasComments() bool {
	for _, result := range r.Results {
		if result.Status == FileReviewed && len(result.Comments) > 0 {
			return true
		}
	}
	return false
}
