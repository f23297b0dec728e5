package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds a single expense description.
const MaxDescriptionLength = 500

// ValidateAmount validates an expense amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDescription validates an expense description.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return ErrEmptyDescription
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: limit is %d characters", ErrDescriptionTooLong, MaxDescriptionLength)
	}

	return nil
}

// ValidateCategoryName validates a category reference on an expense draft.
// Only non-emptiness is checked: the category set is a soft reference and a
// name that no longer matches a live category stays displayable.
func ValidateCategoryName(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// ValidateDate checks that date does not fall on a calendar day after now.
// Backdating is allowed; both instants are compared in local calendar terms.
func ValidateDate(date, now time.Time) error {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	y, m, d = now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	if day.After(today) {
		return ErrFutureDate
	}
	return nil
}

// ValidateDraft validates a full expense draft before it is persisted.
func ValidateDraft(amount decimal.Decimal, description, category string, date, now time.Time) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := ValidateDescription(description); err != nil {
		return err
	}
	if err := ValidateCategoryName(category); err != nil {
		return err
	}
	return ValidateDate(date, now)
}
