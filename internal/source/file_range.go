package source

// FileRange is a Range tied to the File it indexes. The File pointer is
// non-owning; files outlive every range built over them.
type FileRange struct {
	File *File
	Range
	// Trimmed marks ranges measured against the fully de-indented line:
	// relative-range conversion subtracts the line's own indent instead of
	// the group's minimum indent.
	Trimmed bool
}

// Trim returns a copy flagged as trimmed.
func (fr FileRange) Trim() FileRange {
	fr.Trimmed = true
	return fr
}

// SameBounds reports whether two ranges point at the identical region of the
// same file. Used by the duplicate-label policy.
func (fr FileRange) SameBounds(other FileRange) bool {
	return fr.File == other.File && fr.Start == other.Start && fr.End == other.End
}

// Text returns the content covered by the range.
func (fr FileRange) Text() string {
	if fr.File == nil {
		return ""
	}
	return fr.File.Slice(fr.Range)
}
