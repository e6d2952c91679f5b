package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 16.67, Round(16.666666))
	assert.Equal(t, 16.66, Round(16.664))
	assert.Equal(t, 0.0, Round(0))
	assert.Equal(t, -2.35, Round(-2.346))
	assert.Equal(t, 100.0, Round(99.999))
}

func TestNormalizePagination(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 7, NormalizePage(7))

	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-1))
	assert.Equal(t, 25, NormalizeLimit(25))
	assert.Equal(t, MaxLimit, NormalizeLimit(500))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 4, TotalPages(31, 10))
}
