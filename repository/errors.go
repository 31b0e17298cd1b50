package repository

import "errors"

// Common repository errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownField = errors.New("unknown field")
	ErrNoFields     = errors.New("no valid fields provided for update")
	ErrDuplicate    = errors.New("duplicate key")
)
