package services

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

type fakeBookingLedger struct {
	payments map[string]*models.Payment
}

func newFakeBookingLedger() *fakeBookingLedger {
	return &fakeBookingLedger{payments: make(map[string]*models.Payment)}
}

func (f *fakeBookingLedger) CreatePayment(payment *models.Payment) error {
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeBookingLedger) GetPaymentByID(id string) (*models.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *payment
	return &copied, nil
}

func (f *fakeBookingLedger) MarkPaymentStatus(id, from, to, transactionID string) (bool, error) {
	payment, ok := f.payments[id]
	if !ok || payment.PaymentStatus != from {
		return false, nil
	}
	payment.PaymentStatus = to
	if transactionID != "" {
		payment.TransactionID = transactionID
	}
	return true, nil
}

func (f *fakeBookingLedger) MarkBookingStatus(id, to string, from ...string) (bool, error) {
	payment, ok := f.payments[id]
	if !ok {
		return false, nil
	}
	for _, status := range from {
		if payment.Status == status {
			payment.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingLedger) SetRating(id string, rating float64, review string) (bool, error) {
	payment, ok := f.payments[id]
	if !ok || payment.Status != utils.StatusCompleted || payment.PaymentStatus != utils.PaymentStatusPaid {
		return false, nil
	}
	payment.Rating = &rating
	payment.Review = review
	return true, nil
}

type fakeArtisanStore struct {
	artisans map[string]*models.Artisan
}

func newFakeArtisanStore(artisans ...*models.Artisan) *fakeArtisanStore {
	store := &fakeArtisanStore{artisans: make(map[string]*models.Artisan)}
	for _, artisan := range artisans {
		store.artisans[artisan.ID] = artisan
	}
	return store
}

func (f *fakeArtisanStore) CreateWithUser(user *models.User, artisan *models.Artisan) error {
	f.artisans[artisan.ID] = artisan
	return nil
}

func (f *fakeArtisanStore) GetArtisanByID(id string) (*models.Artisan, error) {
	artisan, ok := f.artisans[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return artisan, nil
}

func (f *fakeArtisanStore) GetArtisanByUserID(userID string) (*models.Artisan, error) {
	for _, artisan := range f.artisans {
		if artisan.UserID == userID {
			return artisan, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeArtisanStore) FindByStatus(status string, offset, limit int) ([]models.Artisan, int64, error) {
	var matched []models.Artisan
	for _, artisan := range f.artisans {
		if artisan.Status == status {
			matched = append(matched, *artisan)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeArtisanStore) UpdateStatus(id, status string) (bool, error) {
	artisan, ok := f.artisans[id]
	if !ok {
		return false, nil
	}
	artisan.Status = status
	return true, nil
}

type fakeRateSource struct {
	settings *models.CommissionSettings
}

func (f *fakeRateSource) GetCommissionSettings() (*models.CommissionSettings, error) {
	if f.settings == nil {
		return nil, sql.ErrNoRows
	}
	return f.settings, nil
}

func paymentFixture(t *testing.T) (*PaymentService, *fakeBookingLedger, string) {
	t.Helper()

	artisanID := utils.GenerateID()
	artisan := &models.Artisan{
		ID:         artisanID,
		UserID:     utils.GenerateID(),
		Category:   "Plumbing",
		HourlyRate: 50,
		Status:     utils.ArtisanStatusApproved,
	}
	ledger := newFakeBookingLedger()
	rates := &fakeRateSource{settings: &models.CommissionSettings{DefaultRate: 15}}
	service := NewPaymentService(ledger, newFakeArtisanStore(artisan), rates, NewCommissionService())
	return service, ledger, artisanID
}

func bookingRequest(artisanID string) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		ArtisanID:     artisanID,
		Service:       "Plumbing",
		Date:          "2025-06-20",
		Time:          "10:00",
		Duration:      "4 hours",
		Location:      "Lagos",
		HourlyRate:    50,
		Subtotal:      200,
		Tax:           15,
		PaymentMethod: "card",
	}
}

func TestPaymentService_CreateBooking(t *testing.T) {
	service, _, artisanID := paymentFixture(t)

	payment, err := service.CreateBooking(utils.GenerateID(), bookingRequest(artisanID))
	assert.NoError(t, err)

	// 15% of the 200 subtotal, total is subtotal plus tax
	assert.Equal(t, 30.0, payment.PlatformFee)
	assert.Equal(t, 215.0, payment.Total)
	assert.Equal(t, 185.0, payment.NetPayout())

	assert.Equal(t, utils.StatusPending, payment.Status)
	assert.Equal(t, utils.PaymentStatusPending, payment.PaymentStatus)
	assert.Equal(t, utils.PayoutStatusPending, payment.PayoutStatus)
	assert.Empty(t, payment.TransactionID)
}

func TestPaymentService_CreateBooking_UnknownArtisan(t *testing.T) {
	service, _, _ := paymentFixture(t)

	_, err := service.CreateBooking(utils.GenerateID(), bookingRequest(utils.GenerateID()))
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestPaymentService_MarkPaid_Once(t *testing.T) {
	service, _, artisanID := paymentFixture(t)
	payment, err := service.CreateBooking(utils.GenerateID(), bookingRequest(artisanID))
	assert.NoError(t, err)

	paid, err := service.MarkPaid(payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, utils.PaymentStatusPaid, paid.PaymentStatus)
	assert.True(t, strings.HasPrefix(paid.TransactionID, utils.TransactionIDPrefix))

	// A settled payment cannot be charged again
	_, err = service.MarkPaid(payment.ID)
	assert.Error(t, err)

	// Nor flipped to failed afterwards
	_, err = service.MarkFailed(payment.ID)
	assert.Error(t, err)
}

func TestPaymentService_BookingLifecycle(t *testing.T) {
	service, _, artisanID := paymentFixture(t)
	payment, err := service.CreateBooking(utils.GenerateID(), bookingRequest(artisanID))
	assert.NoError(t, err)

	started, err := service.StartBooking(payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, utils.StatusInProgress, started.Status)

	completed, err := service.CompleteBooking(payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, utils.StatusCompleted, completed.Status)

	// A completed booking cannot be cancelled
	_, err = service.CancelBooking(payment.ID)
	assert.Error(t, err)
}

func TestPaymentService_RateBooking(t *testing.T) {
	service, _, artisanID := paymentFixture(t)
	payment, err := service.CreateBooking(utils.GenerateID(), bookingRequest(artisanID))
	assert.NoError(t, err)

	// Rating before completion is rejected
	_, err = service.RateBooking(payment.ID, &models.RateBookingRequest{Rating: 5})
	assert.Error(t, err)

	_, err = service.MarkPaid(payment.ID)
	assert.NoError(t, err)
	_, err = service.StartBooking(payment.ID)
	assert.NoError(t, err)
	_, err = service.CompleteBooking(payment.ID)
	assert.NoError(t, err)

	rated, err := service.RateBooking(payment.ID, &models.RateBookingRequest{Rating: 4.5, Review: "Solid work"})
	assert.NoError(t, err)
	assert.NotNil(t, rated.Rating)
	assert.Equal(t, 4.5, *rated.Rating)
	assert.Equal(t, "Solid work", rated.Review)

	// Out-of-scale ratings are rejected up front
	_, err = service.RateBooking(payment.ID, &models.RateBookingRequest{Rating: 6})
	assert.Error(t, err)
}
