package cli

import (
	"errors"

	"github.com/roach88/playsheet/internal/catalog"
	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/store"
)

// classify maps an operation error to an exit code and error code. Errors
// joined by a partial drop are classified by their first match.
func classify(err error) (exitCode int, code string) {
	switch {
	case store.IsNotFound(err):
		return ExitFailure, ErrCodeNotFound
	case store.IsInvalid(err), errors.Is(err, domain.ErrInvalidValue):
		return ExitCommandError, ErrCodeInvalid
	case catalog.IsLoadError(err):
		return ExitCommandError, ErrCodeCatalog
	case store.IsStorage(err):
		return ExitCommandError, ErrCodeDatabase
	default:
		return ExitFailure, ErrCodeGeneric
	}
}
