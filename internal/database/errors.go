package database

import "errors"

// Item-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong  = errors.New("title cannot exceed 255 characters")
	ErrInvalidItemID = errors.New("invalid item ID")
	ErrEmptyStatus   = errors.New("status cannot be empty")

	// Lookup errors
	ErrItemNotFound = errors.New("item not found")
)
