package selection

import (
	"errors"
	"fmt"
)

// TransitionError reports an operation that is not valid in the engine's
// current state. The engine is unchanged.
type TransitionError struct {
	Op    string
	State State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("selection: %s not allowed while %s", e.Op, e.State)
}

// IsTransitionError returns true if err is or wraps a *TransitionError.
func IsTransitionError(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}

// DropError reports the entries a drop could not tag. Entries tagged
// before or after a failure keep their tag.
type DropError struct {
	Token string
	Tag   string

	// Failed lists the entry ids in payload order.
	Failed []int64

	// Err joins the per-entry errors.
	Err error
}

func (e *DropError) Error() string {
	return fmt.Sprintf("drop %q: %d of the dragged entries failed: %v", e.Tag, len(e.Failed), e.Err)
}

func (e *DropError) Unwrap() error {
	return e.Err
}
