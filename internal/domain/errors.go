// Package domain holds the store-agnostic sentinel errors shared by the
// repositories and use cases.
package domain

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate entry")
)
