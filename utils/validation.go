package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateRating checks that a rating is on the 0-5 scale
func ValidateRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return NewValidationError("rating must be between 0 and 5")
	}
	return nil
}

// ValidatePercentage checks that a rate is on the 0-100 scale
func ValidatePercentage(value float64, fieldName string) error {
	if value < 0 || value > 100 {
		return NewValidationError(fmt.Sprintf("%s must be between 0 and 100", fieldName))
	}
	return nil
}

// ValidateID checks that an identifier is a well-formed UUID. A malformed
// identifier is a client error, not a lookup miss.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return NewBadRequestError(ErrInvalidIdentifier)
	}
	return nil
}
