package reader

import (
	"errors"
	"fmt"
)

// ErrSourceUnreadable indicates the source cannot be opened or parsed as tabular data.
var ErrSourceUnreadable = errors.New("source unreadable")

// ErrSourceNotFound indicates no candidate source path exists.
var ErrSourceNotFound = errors.New("source not found")

// ErrUnsupportedSource indicates a source extension no reader handles.
var ErrUnsupportedSource = errors.New("unsupported source format")

// SourceError reports a failure to read a source file.
// Every SourceError matches ErrSourceUnreadable with errors.Is.
type SourceError struct {
	Path  string
	Sheet string // empty when the failure is not sheet-specific
	Err   error
}

func (e *SourceError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("read %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is makes every SourceError match ErrSourceUnreadable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnreadable
}

// NewSourceError creates a new SourceError.
func NewSourceError(path, sheet string, err error) *SourceError {
	return &SourceError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
