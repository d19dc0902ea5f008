package models

import "errors"

// Domain-specific errors for board operations
var (
	// ErrUnknownViewDimension indicates a dimension outside the supported set
	ErrUnknownViewDimension = errors.New("unknown view dimension")

	// ErrColumnNotFound indicates no column carries the requested id
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotABucket indicates an attempt to remove a column that is not an ad-hoc bucket
	ErrNotABucket = errors.New("column is not a bucket")

	// ErrInvalidMove indicates a column move outside the board bounds
	ErrInvalidMove = errors.New("column cannot move further in that direction")
)
