package services

import (
	"fmt"
	"time"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// PaymentLedger is the read side of the payment record store: windowed
// aggregates and grouped rankings. All sums are zero for empty sets.
type PaymentLedger interface {
	SumPaidTotals(start, end time.Time) (float64, error)
	SumPaidFees(start, end time.Time) (float64, error)
	CountActiveBookings(start, end time.Time) (int64, error)
	TopArtisans(limit int) ([]models.TopArtisan, error)
	PopularServices(limit int) ([]models.PopularService, error)
	PendingPayoutSummary() (*models.PendingPayoutSummary, error)
	RevenueSummary() (*models.RevenueSummary, error)
	RecentBookings(limit int) ([]models.BookingView, error)
	RecentCompleted(limit int) ([]models.BookingView, error)
}

// ArtisanDirectory is the artisan-profile store as seen by the dashboard
type ArtisanDirectory interface {
	CountByStatus(status string) (int64, error)
	CountApprovedBefore(t time.Time) (int64, error)
	CountPendingBefore(t time.Time) (int64, error)
	PendingApplications(limit int) ([]models.PendingArtisan, error)
}

// DashboardService assembles the fixed set of admin-facing metrics, rankings
// and alerts. Everything is recomputed on every call; nothing is cached or
// persisted.
type DashboardService struct {
	ledger     PaymentLedger
	artisans   ArtisanDirectory
	commission *CommissionService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(ledger PaymentLedger, artisans ArtisanDirectory, commission *CommissionService) *DashboardService {
	return &DashboardService{
		ledger:     ledger,
		artisans:   artisans,
		commission: commission,
	}
}

// GetDashboardStats produces the four admin dashboard cards, each compared
// against the immediately preceding window of equal length
func (s *DashboardService) GetDashboardStats(timeframe string) ([]models.DashboardMetric, error) {
	window := s.commission.CurrentWindow(timeframe)
	previous := s.commission.PreviousWindow(window)

	totalArtisans, err := s.artisans.CountByStatus(utils.ArtisanStatusApproved)
	if err != nil {
		return nil, err
	}
	previousArtisans, err := s.artisans.CountApprovedBefore(window.Start)
	if err != nil {
		return nil, err
	}
	artisansChange := s.commission.PercentageChange(float64(previousArtisans), float64(totalArtisans))

	totalRevenue, err := s.ledger.SumPaidTotals(window.Start, window.End)
	if err != nil {
		return nil, err
	}
	previousRevenue, err := s.ledger.SumPaidTotals(previous.Start, previous.End)
	if err != nil {
		return nil, err
	}
	revenueChange := s.commission.PercentageChange(previousRevenue, totalRevenue)

	activeBookings, err := s.ledger.CountActiveBookings(window.Start, window.End)
	if err != nil {
		return nil, err
	}
	previousBookings, err := s.ledger.CountActiveBookings(previous.Start, previous.End)
	if err != nil {
		return nil, err
	}
	bookingsChange := s.commission.PercentageChange(float64(previousBookings), float64(activeBookings))

	commissionEarned, err := s.ledger.SumPaidFees(window.Start, window.End)
	if err != nil {
		return nil, err
	}
	previousCommission, err := s.ledger.SumPaidFees(previous.Start, previous.End)
	if err != nil {
		return nil, err
	}
	commissionChange := s.commission.PercentageChange(previousCommission, commissionEarned)

	return []models.DashboardMetric{
		{
			Title:  "Total Artisans",
			Value:  fmt.Sprintf("%d", totalArtisans),
			Change: formatChange(artisansChange),
			Trend:  trendDirection(artisansChange),
		},
		{
			Title:  "Total Revenue",
			Value:  fmt.Sprintf("$%.2f", totalRevenue),
			Change: formatChange(revenueChange),
			Trend:  trendDirection(revenueChange),
		},
		{
			Title:  "Active Bookings",
			Value:  fmt.Sprintf("%d", activeBookings),
			Change: formatChange(bookingsChange),
			Trend:  trendDirection(bookingsChange),
		},
		{
			Title:  "Commission Earned",
			Value:  fmt.Sprintf("$%.2f", commissionEarned),
			Change: formatChange(commissionChange),
			Trend:  trendDirection(commissionChange),
		},
	}, nil
}

// GetTopArtisans ranks the three highest-earning artisans over paid records
func (s *DashboardService) GetTopArtisans() ([]models.TopArtisan, error) {
	artisans, err := s.ledger.TopArtisans(3)
	if err != nil {
		return nil, err
	}
	if artisans == nil {
		artisans = []models.TopArtisan{}
	}
	for i := range artisans {
		artisans[i].TotalEarnings = utils.Round(artisans[i].TotalEarnings)
	}
	return artisans, nil
}

// GetPopularCategories ranks the four most-booked services over paid records
func (s *DashboardService) GetPopularCategories() ([]models.PopularService, error) {
	services, err := s.ledger.PopularServices(4)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.PopularService{}
	}
	for i := range services {
		services[i].Revenue = utils.Round(services[i].Revenue)
	}
	return services, nil
}

// GetPendingPayouts summarizes the amounts owed to artisans for paid records
// not yet paid out
func (s *DashboardService) GetPendingPayouts() (*models.PendingPayoutsResponse, error) {
	summary, err := s.ledger.PendingPayoutSummary()
	if err != nil {
		return nil, err
	}
	return &models.PendingPayoutsResponse{
		Total:          utils.Round(summary.Total),
		Artisans:       summary.ArtisanCount,
		NextPayoutDate: s.commission.Now().AddDate(0, 0, 7),
	}, nil
}

// GetRevenueSummary reconciles all-time paid money movement
func (s *DashboardService) GetRevenueSummary() (*models.RevenueSummary, error) {
	return s.ledger.RevenueSummary()
}

// GetRecentBookings lists the ten latest booking records
func (s *DashboardService) GetRecentBookings() ([]models.BookingView, error) {
	bookings, err := s.ledger.RecentBookings(10)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.BookingView{}
	}
	return bookings, nil
}

// GetPendingArtisans lists pending applications for admin review
func (s *DashboardService) GetPendingArtisans() ([]models.PendingArtisan, error) {
	applications, err := s.artisans.PendingApplications(50)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []models.PendingArtisan{}
	}
	return applications, nil
}

// GetRecentActivity builds the admin activity feed from the latest pending
// applications and completed bookings
func (s *DashboardService) GetRecentActivity() ([]models.RecentActivityItem, error) {
	applications, err := s.artisans.PendingApplications(2)
	if err != nil {
		return nil, err
	}
	completed, err := s.ledger.RecentCompleted(2)
	if err != nil {
		return nil, err
	}

	activities := []models.RecentActivityItem{}
	for _, app := range applications {
		activities = append(activities, models.RecentActivityItem{
			Action: "New artisan application",
			User:   app.Name,
			Time:   s.formatTimeAgo(app.AppliedDate),
			Type:   "application",
		})
	}
	for _, booking := range completed {
		activities = append(activities, models.RecentActivityItem{
			Action: "Booking completed",
			User:   booking.CustomerName,
			Time:   s.formatTimeAgo(booking.CreatedAt),
			Type:   "booking",
		})
	}

	if len(activities) > 4 {
		activities = activities[:4]
	}
	return activities, nil
}

// GetPlatformAlerts recomputes the admin alert list. A warning fires when
// any application has been pending for more than 48 hours; an info alert
// fires when payouts are pending, carrying the platform fee share of the
// pending set.
func (s *DashboardService) GetPlatformAlerts() ([]models.PlatformAlert, error) {
	cutoff := s.commission.Now().Add(-utils.StaleApplicationHours * time.Hour)

	stalePending, err := s.artisans.CountPendingBefore(cutoff)
	if err != nil {
		return nil, err
	}
	payouts, err := s.ledger.PendingPayoutSummary()
	if err != nil {
		return nil, err
	}

	alerts := []models.PlatformAlert{}
	if stalePending > 0 {
		alerts = append(alerts, models.PlatformAlert{
			Type:       "warning",
			Message:    fmt.Sprintf("%d artisan applications pending review", stalePending),
			Details:    "Applications older than 48 hours",
			ActionText: "Review",
		})
	}
	if payouts.RecordCount > 0 {
		alerts = append(alerts, models.PlatformAlert{
			Type:       "info",
			Message:    fmt.Sprintf("%d payouts pending", payouts.RecordCount),
			Details:    fmt.Sprintf("Total payout: $%.2f", payouts.FeeTotal),
			ActionText: "Process",
		})
	}
	return alerts, nil
}

func (s *DashboardService) formatTimeAgo(t time.Time) string {
	diff := s.commission.Now().Sub(t)
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// formatChange renders a percent change with an explicit sign for positive
// values, rounded to whole percent
func formatChange(change float64) string {
	if change > 0 {
		return fmt.Sprintf("+%.0f%%", change)
	}
	return fmt.Sprintf("%.0f%%", change)
}

func trendDirection(change float64) string {
	if change >= 0 {
		return "up"
	}
	return "down"
}
