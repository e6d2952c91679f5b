package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KennethJT1/Artisan-backend/models"
)

// fakePayoutStore simulates the conditional bulk update: the first run flips
// every eligible record, later runs find nothing left
type fakePayoutStore struct {
	pending int64
	net     float64
	runs    int
}

func (f *fakePayoutStore) ProcessPendingPayouts(processedAt time.Time) (int64, error) {
	f.runs++
	processed := f.pending
	f.pending = 0
	f.net = 0
	return processed, nil
}

func (f *fakePayoutStore) PendingPayoutSummary() (*models.PendingPayoutSummary, error) {
	return &models.PendingPayoutSummary{
		Total:       f.net,
		RecordCount: f.pending,
	}, nil
}

func TestPayoutService_ProcessPendingPayouts(t *testing.T) {
	store := &fakePayoutStore{pending: 3, net: 425.50}
	service := NewPayoutService(store, NewCommissionService())

	result, err := service.ProcessPendingPayouts()
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(3), result.Processed)
	assert.Equal(t, 0.0, result.Total)
}

func TestPayoutService_ProcessPendingPayouts_Idempotent(t *testing.T) {
	store := &fakePayoutStore{pending: 2, net: 180}
	service := NewPayoutService(store, NewCommissionService())

	first, err := service.ProcessPendingPayouts()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), first.Processed)

	// A second run with nothing eligible succeeds and modifies zero records
	second, err := service.ProcessPendingPayouts()
	assert.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, int64(0), second.Processed)
	assert.Equal(t, 2, store.runs)
}
