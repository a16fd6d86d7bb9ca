package model

// PullRequest represents the slice of pull request data the reviewer needs:
// identity for logging and the changed-file count for progress reporting.
type PullRequest struct {
	Number       int
	RepoFullName string
	Title        string
	Author       string
	HeadSHA      string
	ChangedFiles int
	URL          string
}
