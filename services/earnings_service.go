package services

import (
	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// EarningsLedger is the payment record store scoped to a single artisan
type EarningsLedger interface {
	ArtisanPaidTotals(artisanID string) (float64, int64, error)
	ArtisanMonthlyNet(artisanID string) ([]models.MonthlyEarnings, error)
	ArtisanPaidHistory(artisanID string, offset, limit int) ([]models.EarningsEntry, int64, error)
	ArtisanRatedRecords(artisanID string, offset, limit int) ([]models.ReviewEntry, int64, error)
}

// EarningsService assembles the earnings and review views for one artisan
type EarningsService struct {
	ledger EarningsLedger
}

// NewEarningsService creates a new earnings service
func NewEarningsService(ledger EarningsLedger) *EarningsService {
	return &EarningsService{ledger: ledger}
}

// GetEarningsSummary returns an artisan's all-time net earnings, paid job
// count and a calendar-month breakdown of whichever months appear in the
// paid record set
func (s *EarningsService) GetEarningsSummary(artisanID string) (*models.EarningsSummary, error) {
	total, jobs, err := s.ledger.ArtisanPaidTotals(artisanID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	months, err := s.ledger.ArtisanMonthlyNet(artisanID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	for i := range months {
		months[i].Earnings = utils.Round(months[i].Earnings)
	}
	if months == nil {
		months = []models.MonthlyEarnings{}
	}

	return &models.EarningsSummary{
		TotalEarnings:    utils.Round(total),
		TotalJobs:        jobs,
		MonthlyBreakdown: months,
	}, nil
}

// GetEarningsHistory returns one page of an artisan's paid records with
// gross, commission and net columns, newest first
func (s *EarningsService) GetEarningsHistory(artisanID string, page, limit int) (*models.EarningsHistoryResponse, error) {
	page = utils.NormalizePage(page)
	limit = utils.NormalizeLimit(limit)

	entries, total, err := s.ledger.ArtisanPaidHistory(artisanID, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if entries == nil {
		entries = []models.EarningsEntry{}
	}

	return &models.EarningsHistoryResponse{
		Data: entries,
		Meta: models.PaginationMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: utils.TotalPages(total, limit),
		},
	}, nil
}

// GetReviewsByArtisan returns one page of an artisan's rated records. The
// average rating is the arithmetic mean over the returned page only, so it
// shifts as the caller pages through the record set.
func (s *EarningsService) GetReviewsByArtisan(artisanID string, page, limit int) (*models.ReviewsResponse, error) {
	page = utils.NormalizePage(page)
	limit = utils.NormalizeLimit(limit)

	entries, total, err := s.ledger.ArtisanRatedRecords(artisanID, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if entries == nil {
		entries = []models.ReviewEntry{}
	}

	var average float64
	if len(entries) > 0 {
		var sum float64
		for _, entry := range entries {
			sum += entry.Rating
		}
		average = utils.Round(sum / float64(len(entries)))
	}

	return &models.ReviewsResponse{
		Data:          entries,
		AverageRating: average,
		Meta: models.PaginationMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: utils.TotalPages(total, limit),
		},
	}, nil
}
