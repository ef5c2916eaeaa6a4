package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgInvalidItemRef = "invalid item reference"
	ErrMsgDuplicateItem  = "duplicate item id"

	// Database load errors
	ErrMsgMissingLanguage = "language table missing from database"
	ErrMsgMalformedDB     = "malformed item database"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrInvalidItemRef = errors.New(ErrMsgInvalidItemRef)
	ErrDuplicateItem  = errors.New(ErrMsgDuplicateItem)

	// Database load errors
	ErrMissingLanguage = errors.New(ErrMsgMissingLanguage)
	ErrMalformedDB     = errors.New(ErrMsgMalformedDB)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
