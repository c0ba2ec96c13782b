package model

import "errors"

// Errors the data collaborator reports for row-level outcomes.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflicts with an existing row")
)
