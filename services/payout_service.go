package services

import (
	"time"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// PayoutStore is the write side of payout processing. The bulk transition
// must be a single conditional update: only rows that are paid and still
// pending flip, so concurrent callers never double-process a record.
type PayoutStore interface {
	ProcessPendingPayouts(processedAt time.Time) (int64, error)
	PendingPayoutSummary() (*models.PendingPayoutSummary, error)
}

// PayoutService runs the bulk payout transition
type PayoutService struct {
	store      PayoutStore
	commission *CommissionService
}

// NewPayoutService creates a new payout service
func NewPayoutService(store PayoutStore, commission *CommissionService) *PayoutService {
	return &PayoutService{store: store, commission: commission}
}

// ProcessPendingPayouts marks every paid record with a pending payout as
// processed and reports the count modified. Re-invoking with nothing left to
// process modifies zero rows and is not an error.
func (s *PayoutService) ProcessPendingPayouts() (*models.PayoutResult, error) {
	processed, err := s.store.ProcessPendingPayouts(s.commission.Now())
	if err != nil {
		return nil, err
	}

	// Remaining total after the run; zero unless new paid records arrived
	// while the update was in flight
	summary, err := s.store.PendingPayoutSummary()
	if err != nil {
		return nil, err
	}

	return &models.PayoutResult{
		Success:   true,
		Processed: processed,
		Total:     utils.Round(summary.Total),
	}, nil
}
