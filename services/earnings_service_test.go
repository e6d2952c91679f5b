package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KennethJT1/Artisan-backend/models"
)

type fakeEarningsLedger struct {
	entries []models.EarningsEntry
	reviews []models.ReviewEntry
	months  []models.MonthlyEarnings
}

func (f *fakeEarningsLedger) ArtisanPaidTotals(artisanID string) (float64, int64, error) {
	var total float64
	for _, entry := range f.entries {
		total += entry.Net
	}
	return total, int64(len(f.entries)), nil
}

func (f *fakeEarningsLedger) ArtisanMonthlyNet(artisanID string) ([]models.MonthlyEarnings, error) {
	return f.months, nil
}

func (f *fakeEarningsLedger) ArtisanPaidHistory(artisanID string, offset, limit int) ([]models.EarningsEntry, int64, error) {
	return page(f.entries, offset, limit), int64(len(f.entries)), nil
}

func (f *fakeEarningsLedger) ArtisanRatedRecords(artisanID string, offset, limit int) ([]models.ReviewEntry, int64, error) {
	return page(f.reviews, offset, limit), int64(len(f.reviews)), nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func TestEarningsService_GetEarningsSummary(t *testing.T) {
	// Three paid jobs: gross 100/200/50 at a 10% commission
	ledger := &fakeEarningsLedger{
		entries: []models.EarningsEntry{
			{Gross: 100, Commission: 10, Net: 90},
			{Gross: 200, Commission: 20, Net: 180},
			{Gross: 50, Commission: 5, Net: 45},
		},
		months: []models.MonthlyEarnings{
			{Month: "2025-05", Earnings: 270, Jobs: 2},
			{Month: "2025-06", Earnings: 45, Jobs: 1},
		},
	}
	service := NewEarningsService(ledger)

	summary, err := service.GetEarningsSummary("artisan-1")
	assert.NoError(t, err)
	assert.Equal(t, 315.0, summary.TotalEarnings)
	assert.Equal(t, int64(3), summary.TotalJobs)
	assert.Len(t, summary.MonthlyBreakdown, 2)
	assert.Equal(t, "2025-05", summary.MonthlyBreakdown[0].Month)
	assert.Equal(t, 270.0, summary.MonthlyBreakdown[0].Earnings)
}

func TestEarningsService_GetEarningsSummary_NoJobs(t *testing.T) {
	service := NewEarningsService(&fakeEarningsLedger{})

	summary, err := service.GetEarningsSummary("artisan-1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalEarnings)
	assert.Equal(t, int64(0), summary.TotalJobs)
	assert.NotNil(t, summary.MonthlyBreakdown)
	assert.Empty(t, summary.MonthlyBreakdown)
}

func TestEarningsService_GetEarningsHistory_Pagination(t *testing.T) {
	ledger := &fakeEarningsLedger{
		entries: []models.EarningsEntry{
			{Service: "Plumbing", Net: 90},
			{Service: "Wiring", Net: 180},
			{Service: "Painting", Net: 45},
		},
	}
	service := NewEarningsService(ledger)

	first, err := service.GetEarningsHistory("artisan-1", 1, 2)
	assert.NoError(t, err)
	assert.Len(t, first.Data, 2)
	assert.Equal(t, int64(3), first.Meta.Total)
	assert.Equal(t, 1, first.Meta.Page)
	assert.Equal(t, 2, first.Meta.TotalPages)

	second, err := service.GetEarningsHistory("artisan-1", 2, 2)
	assert.NoError(t, err)
	assert.Len(t, second.Data, 1)
	assert.Equal(t, "Painting", second.Data[0].Service)

	// Out-of-range pages return an empty data slice, not an error
	third, err := service.GetEarningsHistory("artisan-1", 3, 2)
	assert.NoError(t, err)
	assert.NotNil(t, third.Data)
	assert.Empty(t, third.Data)

	// Invalid paging inputs fall back to the defaults
	defaults, err := service.GetEarningsHistory("artisan-1", 0, -5)
	assert.NoError(t, err)
	assert.Equal(t, 1, defaults.Meta.Page)
	assert.Equal(t, 10, defaults.Meta.Limit)
}

func TestEarningsService_GetReviewsByArtisan_PageScopedAverage(t *testing.T) {
	ledger := &fakeEarningsLedger{
		reviews: []models.ReviewEntry{
			{CustomerName: "Jane Doe", Rating: 5},
			{CustomerName: "Sam Okafor", Rating: 4},
			{CustomerName: "Ade Bello", Rating: 2},
		},
	}
	service := NewEarningsService(ledger)

	// The average covers the returned page only, so it shifts between pages
	first, err := service.GetReviewsByArtisan("artisan-1", 1, 2)
	assert.NoError(t, err)
	assert.Len(t, first.Data, 2)
	assert.Equal(t, 4.5, first.AverageRating)

	second, err := service.GetReviewsByArtisan("artisan-1", 2, 2)
	assert.NoError(t, err)
	assert.Len(t, second.Data, 1)
	assert.Equal(t, 2.0, second.AverageRating)
}

func TestEarningsService_GetReviewsByArtisan_NoReviews(t *testing.T) {
	service := NewEarningsService(&fakeEarningsLedger{})

	reviews, err := service.GetReviewsByArtisan("artisan-1", 1, 10)
	assert.NoError(t, err)
	assert.Empty(t, reviews.Data)
	assert.Equal(t, 0.0, reviews.AverageRating)
}
