package domain

import "errors"

// ErrInvalidValue is wrapped by every validation failure in this package.
// Callers test for it with errors.Is.
var ErrInvalidValue = errors.New("invalid value")

// Ref returns a pointer to v. It keeps patch literals short:
//
//	domain.Patch{Notes: domain.Ref("watch the nickel")}
func Ref[T any](v T) *T {
	return &v
}
