package model

// ChangedFile represents one file touched by a pull request, as reported by
// the hosting platform. Patch stays a pointer because the platform omits the
// field entirely for binary files and rename-only changes, and that absence
// is meaningful to the review filter.
type ChangedFile struct {
	Filename string
	Patch    *string
}

// HasPatch reports whether the platform provided diff text for the file.
func (f ChangedFile) HasPatch() bool {
	return f.Patch != nil
}

// PatchSize returns the length in bytes of the diff text, or 0 when absent.
func (f ChangedFile) PatchSize() int {
	if f.Patch == nil {
		return 0
	}
	return len(*f.Patch)
}
