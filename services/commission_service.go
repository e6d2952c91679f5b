package services

import (
	"time"

	"github.com/KennethJT1/Artisan-backend/utils"
)

// Window is a half-open [Start, End) interval scoping ledger aggregates
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration returns the window length
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// CommissionService holds the pure money math shared by the dashboard and
// the artisan earnings views
type CommissionService struct {
	now func() time.Time
}

// NewCommissionService creates a new commission service on the wall clock
func NewCommissionService() *CommissionService {
	return &CommissionService{now: time.Now}
}

// NewCommissionServiceWithClock creates a commission service with a pinned
// clock, used by tests
func NewCommissionServiceWithClock(now func() time.Time) *CommissionService {
	return &CommissionService{now: now}
}

// Now returns the service's current instant
func (s *CommissionService) Now() time.Time {
	return s.now()
}

// PercentageChange returns the signed percent change from previous to
// current. A zero previous value is a defined outcome, not an error: 100
// when the current value is positive, 0 otherwise.
func (s *CommissionService) PercentageChange(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// NetPayout is the artisan's share of a single record
func (s *CommissionService) NetPayout(total, platformFee float64) float64 {
	return utils.Round(total - platformFee)
}

// PlatformFee derives the platform's cut of a subtotal at the given
// percentage rate
func (s *CommissionService) PlatformFee(subtotal, rate float64) float64 {
	return utils.Round(subtotal * rate / 100)
}

// CurrentWindow derives [start, now) from a timeframe token. Unknown tokens
// fall back to the 30-day default.
func (s *CommissionService) CurrentWindow(timeframe string) Window {
	end := s.now()
	var start time.Time
	switch timeframe {
	case utils.Timeframe7Days:
		start = end.AddDate(0, 0, -7)
	case utils.Timeframe30Days:
		start = end.AddDate(0, 0, -30)
	case utils.Timeframe90Days:
		start = end.AddDate(0, 0, -90)
	case utils.Timeframe1Year:
		start = end.AddDate(-1, 0, 0)
	default:
		start = end.AddDate(0, 0, -30)
	}
	return Window{Start: start, End: end}
}

// PreviousWindow is the window of identical duration immediately preceding
// w. This symmetric policy is what "change vs previous period" means on
// every dashboard metric.
func (s *CommissionService) PreviousWindow(w Window) Window {
	return Window{Start: w.Start.Add(-w.Duration()), End: w.Start}
}
