package library

import "errors"

// Domain errors. Callers match them with errors.Is; operations wrap them
// with context about the record involved.
var (
	// ErrBookUnavailable covers both a missing copy identifier and a copy
	// that is currently on loan. The two cases are deliberately not
	// distinguished at checkout.
	ErrBookUnavailable = errors.New("book not found or already on loan")

	ErrUserNotFound = errors.New("user not found")

	ErrDuplicateEmail = errors.New("a user with this email is already registered")

	ErrInvalidInput = errors.New("invalid input")
)
