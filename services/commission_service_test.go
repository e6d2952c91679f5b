package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommissionService_PercentageChange(t *testing.T) {
	service := NewCommissionService()

	// No baseline and no activity reads as flat
	assert.Equal(t, 0.0, service.PercentageChange(0, 0))

	// Any growth from a zero baseline reads as 100%
	assert.Equal(t, 100.0, service.PercentageChange(0, 5))
	assert.Equal(t, 100.0, service.PercentageChange(0, 0.01))

	// Ordinary signed changes
	assert.Equal(t, 50.0, service.PercentageChange(100, 150))
	assert.Equal(t, -50.0, service.PercentageChange(100, 50))
	assert.Equal(t, -100.0, service.PercentageChange(100, 0))
}

func TestCommissionService_Windows(t *testing.T) {
	pinned := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service := NewCommissionServiceWithClock(func() time.Time { return pinned })

	window := service.CurrentWindow("30days")
	assert.Equal(t, pinned, window.End)
	assert.Equal(t, pinned.AddDate(0, 0, -30), window.Start)

	// The previous window has identical length and ends where the current
	// window starts
	previous := service.PreviousWindow(window)
	assert.Equal(t, window.Start, previous.End)
	assert.Equal(t, window.Duration(), previous.Duration())
	assert.Equal(t, pinned.AddDate(0, 0, -60), previous.Start)
}

func TestCommissionService_WindowTokens(t *testing.T) {
	pinned := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	service := NewCommissionServiceWithClock(func() time.Time { return pinned })

	assert.Equal(t, pinned.AddDate(0, 0, -7), service.CurrentWindow("7days").Start)
	assert.Equal(t, pinned.AddDate(0, 0, -90), service.CurrentWindow("90days").Start)
	assert.Equal(t, pinned.AddDate(-1, 0, 0), service.CurrentWindow("1year").Start)

	// Unknown tokens fall back to the 30-day default
	assert.Equal(t, pinned.AddDate(0, 0, -30), service.CurrentWindow("6weeks").Start)
	assert.Equal(t, pinned.AddDate(0, 0, -30), service.CurrentWindow("").Start)
}

func TestCommissionService_Money(t *testing.T) {
	service := NewCommissionService()

	// 15% of 200 booked
	assert.Equal(t, 30.0, service.PlatformFee(200, 15))

	// Fee rounds to cents
	assert.Equal(t, 16.67, service.PlatformFee(111.12, 15))

	// Artisan keeps the remainder
	assert.Equal(t, 170.0, service.NetPayout(200, 30))
}
