package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("d9428888-122b-11e1-b85c-61cd3cbb3210"))

	err := ValidateID("abc123")
	assert.Error(t, err)
	appErr, ok := err.(*AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	assert.Error(t, ValidateID(""))
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating(0))
	assert.NoError(t, ValidateRating(4.5))
	assert.NoError(t, ValidateRating(5))
	assert.Error(t, ValidateRating(5.1))
	assert.Error(t, ValidateRating(-1))
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, ValidatePercentage(0, "rate"))
	assert.NoError(t, ValidatePercentage(15, "rate"))
	assert.NoError(t, ValidatePercentage(100, "rate"))
	assert.Error(t, ValidatePercentage(101, "rate"))
	assert.Error(t, ValidatePercentage(-0.5, "rate"))
}

func TestFormatFullName(t *testing.T) {
	assert.Equal(t, "Ade Bello", FormatFullName("Ade", "Bello"))
	assert.Equal(t, "Ade", FormatFullName("Ade", ""))
	assert.Equal(t, "Unknown", FormatFullName("", ""))
}
