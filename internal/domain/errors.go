package domain

import "errors"

var (
	// Validation errors
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrEmptyCategory      = errors.New("category cannot be empty")
	ErrFutureDate         = errors.New("date cannot be in the future")

	// Lookup errors
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrStorage marks a substrate read or write failure during a mutation.
	// Read-only operations never return it; they degrade to empty results.
	ErrStorage = errors.New("storage failure")
)

// IsValidation reports whether err is a draft validation failure, i.e. the
// caller can recover by correcting the input and retrying.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrEmptyCategory) ||
		errors.Is(err, ErrFutureDate)
}
