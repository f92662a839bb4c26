package cmsgraph

import (
	"errors"
	"fmt"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/reader"
)

// ErrSourceUnreadable indicates the source cannot be opened or parsed.
var ErrSourceUnreadable = reader.ErrSourceUnreadable

// ErrSourceNotFound indicates no source path could be resolved.
var ErrSourceNotFound = reader.ErrSourceNotFound

// ErrBuildAborted indicates validation recorded at least one fatal diagnostic.
var ErrBuildAborted = errors.New("build aborted")

// StageError reports a failure inside one pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
