package application

import "github.com/ericfisherdev/salacious/internal/domain/model"

// classifyFile decides whether a changed file's patch goes to the completion
// API. Pure classification with no side effects: a file with no patch text is
// FileSkippedEmpty, a patch over maxPatchBytes is FileSkippedTooLarge, and
// everything else is FileReviewable. A present-but-empty patch string still
// counts as reviewable.
func classifyFile(file model.ChangedFile, maxPatchBytes int) model.FileStatus {
	switch {
	case !file.HasPatch():
		return model.FileSkippedEmpty
	case file.PatchSize() > maxPatchBytes:
		return model.FileSkippedTooLarge
	default:
		return model.FileReviewable
	}
}
