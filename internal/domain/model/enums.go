package model

// FileStatus represents the outcome of processing one changed file.
type FileStatus string

const (
	FileReviewable      FileStatus = "reviewable"        // Patch present and within the size budget.
	FileReviewed        FileStatus = "reviewed"          // Completion produced a parsed comment list.
	FileSkippedEmpty    FileStatus = "skipped_empty"     // Platform provided no patch text.
	FileSkippedTooLarge FileStatus = "skipped_too_large" // Patch exceeds the size budget.
	FileFailed          FileStatus = "failed"            // Both completion attempts failed.
)

// Skipped reports whether the status keeps the file out of the submitted
// review and therefore in the skip list.
func (s FileStatus) Skipped() bool {
	return s == FileSkippedEmpty || s == FileSkippedTooLarge || s == FileFailed
}
