// models/dashboard_models.go
package models

import "time"

// DashboardMetric is one admin dashboard card. Computed on every request,
// never persisted.
type DashboardMetric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// PlatformAlert is a computed admin notice. There is no acknowledgment
// state; alerts disappear when their condition clears.
type PlatformAlert struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	ActionText string `json:"actionText"`
}

// RecentActivityItem is one entry in the admin activity feed
type RecentActivityItem struct {
	Action string `json:"action"`
	User   string `json:"user"`
	Time   string `json:"time"`
	Type   string `json:"type"`
}

// TopArtisan is an artisan ranked by net earnings over paid records
type TopArtisan struct {
	ArtisanID     string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalEarnings float64 `json:"earnings"`
	TotalJobs     int64   `json:"jobs"`
	AverageRating float64 `json:"rating"`
}

// PopularService is a service label ranked by paid booking count
type PopularService struct {
	Category string  `json:"category"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// PendingPayoutSummary aggregates all paid records awaiting payout
type PendingPayoutSummary struct {
	Total        float64 `json:"total"`
	ArtisanCount int64   `json:"artisans"`
	RecordCount  int64   `json:"-"`
	FeeTotal     float64 `json:"-"`
}

// PendingPayoutsResponse is the admin payout panel payload
type PendingPayoutsResponse struct {
	Total          float64   `json:"total"`
	Artisans       int64     `json:"artisans"`
	NextPayoutDate time.Time `json:"nextPayoutDate"`
}

// PayoutResult reports one bulk payout run
type PayoutResult struct {
	Success   bool    `json:"success"`
	Processed int64   `json:"processed"`
	Total     float64 `json:"total"`
}

// RevenueSummary is the all-time money reconciliation view:
// totalRevenue = commissionEarned + artisanPayouts
type RevenueSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	CommissionEarned float64 `json:"commissionEarned"`
	ArtisanPayouts   float64 `json:"artisanPayouts"`
}

// BookingView is a denormalized booking row for admin listings, joined from
// the payment record and the referenced customer and artisan accounts
type BookingView struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer"`
	ArtisanName  string    `json:"artisan"`
	Service      string    `json:"service"`
	Amount       float64   `json:"amount"`
	Commission   float64   `json:"commission"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"date"`
}

// PendingArtisan is a denormalized pending application row
type PendingArtisan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Experience  string    `json:"experience"`
	HourlyRate  float64   `json:"hourlyRate"`
	AppliedDate time.Time `json:"appliedDate"`
}

// EarningsSummary is an artisan's all-time paid earnings view
type EarningsSummary struct {
	TotalEarnings    float64           `json:"totalEarnings"`
	TotalJobs        int64             `json:"totalJobs"`
	MonthlyBreakdown []MonthlyEarnings `json:"monthlyBreakdown"`
}

// MonthlyEarnings is one calendar-month bucket of net earnings
type MonthlyEarnings struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
	Jobs     int64   `json:"jobs"`
}

// EarningsEntry is one row of an artisan's paid history
type EarningsEntry struct {
	PaymentID  string    `json:"paymentId"`
	Service    string    `json:"service"`
	Gross      float64   `json:"gross"`
	Commission float64   `json:"commission"`
	Net        float64   `json:"net"`
	Date       time.Time `json:"date"`
}

// ReviewEntry is one rated record in an artisan's review list
type ReviewEntry struct {
	PaymentID    string    `json:"paymentId"`
	CustomerName string    `json:"customer"`
	Service      string    `json:"service"`
	Rating       float64   `json:"rating"`
	Review       string    `json:"review,omitempty"`
	Date         time.Time `json:"date"`
}

// EarningsHistoryResponse is one page of an artisan's paid history
type EarningsHistoryResponse struct {
	Data []EarningsEntry `json:"data"`
	Meta PaginationMeta  `json:"meta"`
}

// ReviewsResponse is one page of an artisan's reviews. AverageRating is the
// mean over the returned page, not the full record set.
type ReviewsResponse struct {
	Data          []ReviewEntry  `json:"data"`
	AverageRating float64        `json:"averageRating"`
	Meta          PaginationMeta `json:"meta"`
}

// ArtisanListResponse is one page of artisan profiles
type ArtisanListResponse struct {
	Data []Artisan      `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
