package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/playsheet/internal/catalog"
	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		exitCode int
		code     string
	}{
		{"not found", &store.Error{Code: store.CodeNotFound, Op: "get entry", ID: 3}, ExitFailure, ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("entry 3: %w", &store.Error{Code: store.CodeNotFound}), ExitFailure, ErrCodeNotFound},
		{"store invalid", &store.Error{Code: store.CodeInvalid}, ExitCommandError, ErrCodeInvalid},
		{"domain invalid", fmt.Errorf("%w: down 7", domain.ErrInvalidValue), ExitCommandError, ErrCodeInvalid},
		{"catalog", &catalog.LoadError{Source: "catalog.json", Err: errors.New("boom")}, ExitCommandError, ErrCodeCatalog},
		{"storage", &store.Error{Code: store.CodeStorage, Err: errors.New("disk I/O error")}, ExitCommandError, ErrCodeDatabase},
		{"other", errors.New("boom"), ExitFailure, ErrCodeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, code := classify(tt.err)
			assert.Equal(t, tt.exitCode, exitCode)
			assert.Equal(t, tt.code, code)
		})
	}
}
