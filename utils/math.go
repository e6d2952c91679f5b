package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// NormalizePage clamps a 1-indexed page number to valid values
func NormalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// NormalizeLimit clamps a page size to valid values
func NormalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// TotalPages returns the number of pages needed for total items
func TotalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}
