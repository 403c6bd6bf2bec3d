package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"
	ErrMsgLoginInUse   = "external login already linked to another user"

	// Concurrency errors
	ErrMsgConcurrencyConflict = "user was modified by another request"
	ErrMsgDuplicateAlexaToken = "alexa access token already issued"

	// Line errors
	ErrMsgInvalidLine = "invalid line"

	// Identity provider errors
	ErrMsgUnknownProvider = "unknown identity provider"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)
	ErrLoginInUse   = errors.New(ErrMsgLoginInUse)

	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)
	ErrDuplicateAlexaToken = errors.New(ErrMsgDuplicateAlexaToken)

	ErrInvalidLine = errors.New(ErrMsgInvalidLine)

	ErrUnknownProvider = errors.New(ErrMsgUnknownProvider)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
