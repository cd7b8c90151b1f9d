package model

// Status is the outcome of a removal attempt.
type Status int

const (
	// StatusDeleted means the section was found and removed and the file
	// was rewritten.
	StatusDeleted Status = iota
	// StatusEndMarkerMissing means the start marker was found but no end
	// marker follows it; the file was left untouched.
	StatusEndMarkerMissing
	// StatusNotFound means the start marker does not occur in the
	// document; the file was left untouched.
	StatusNotFound
)

// Message returns the status line printed on stdout.
func (s Status) Message() string {
	switch s {
	case StatusDeleted:
		return "Testimonials section successfully deleted"
	case StatusEndMarkerMissing:
		return "Could not find end marker"
	default:
		return "Testimonials section not found"
	}
}

// Summary holds the result of an operation for display.
type Summary struct {
	Status  Status
	Path    string
	Removed int // bytes removed from the document
}
