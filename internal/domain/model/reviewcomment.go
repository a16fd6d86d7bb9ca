package model

// ReviewComment represents a single inline comment produced by the completion
// API for one changed file. Position is the diff-relative anchor the hosting
// platform expects; 0 marks a comment that is not about a specific line.
type ReviewComment struct {
	Path     string
	Position int
	Body     string
}
