package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevError is for hard errors in the analyzed input.
	SevError Severity = iota
	// SevBug is for internal invariant violations surfaced to the user.
	SevBug
	// SevWarning is for warning diagnostics.
	SevWarning
	SevNote
	SevHelp
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevBug:
		return "bug"
	case SevWarning:
		return "warning"
	case SevNote:
		return "note"
	case SevHelp:
		return "help"
	}
	return "unknown"
}
