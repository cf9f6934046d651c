package catalog

import (
	"errors"
	"fmt"
)

// Load stages reported in LoadError.Op.
const (
	OpFetch    = "fetch"
	OpParse    = "parse"
	OpValidate = "validate"
	OpIndex    = "index"
)

// LoadError reports a catalog that could not be fetched, parsed or indexed.
// Browsing cannot continue without a catalog; callers surface the error
// rather than render an empty listing.
type LoadError struct {
	// Source names where the catalog was read from.
	Source string

	// Op is the stage that failed (OpFetch, OpParse, OpValidate, OpIndex).
	Op string

	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError returns true if err is or wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
