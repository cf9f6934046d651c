package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// CodeNotFound indicates the addressed row does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeStorage indicates the database failed. Storage errors are never
	// retried by the store.
	CodeStorage ErrorCode = "STORAGE"

	// CodeInvalid indicates a value was rejected before reaching the
	// database.
	CodeInvalid ErrorCode = "INVALID"
)

// Error is returned by every Store operation that fails.
type Error struct {
	Code ErrorCode

	// Op names the operation, e.g. "update entry".
	Op string

	// ID is the entry or session id, zero when not applicable.
	ID int64

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.ID != 0 {
		fmt.Fprintf(&b, " %d", e.ID)
	}
	fmt.Fprintf(&b, ": %s", e.Code)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err is a store error with CodeNotFound.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsStorage returns true if err is a store error with CodeStorage.
func IsStorage(err error) bool {
	return hasCode(err, CodeStorage)
}

// IsInvalid returns true if err is a store error with CodeInvalid.
func IsInvalid(err error) bool {
	return hasCode(err, CodeInvalid)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

func notFound(op string, id int64) *Error {
	return &Error{Code: CodeNotFound, Op: op, ID: id}
}

func storageErr(op string, id int64, err error) *Error {
	return &Error{Code: CodeStorage, Op: op, ID: id, Err: err}
}

func invalid(op string, id int64, err error) *Error {
	return &Error{Code: CodeInvalid, Op: op, ID: id, Err: err}
}
