package services

import (
	"database/sql"
	"time"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// BookingLedger is the payment store as seen by the booking flow
type BookingLedger interface {
	CreatePayment(payment *models.Payment) error
	GetPaymentByID(id string) (*models.Payment, error)
	MarkPaymentStatus(id, from, to, transactionID string) (bool, error)
	MarkBookingStatus(id, to string, from ...string) (bool, error)
	SetRating(id string, rating float64, review string) (bool, error)
}

// RateSource supplies the commission rate applied to new bookings
type RateSource interface {
	GetCommissionSettings() (*models.CommissionSettings, error)
}

// PaymentService handles booking creation, the payment lifecycle and ratings
type PaymentService struct {
	ledger     BookingLedger
	artisans   ArtisanStore
	rates      RateSource
	commission *CommissionService
}

// NewPaymentService creates a new payment service
func NewPaymentService(ledger BookingLedger, artisans ArtisanStore, rates RateSource, commission *CommissionService) *PaymentService {
	return &PaymentService{
		ledger:     ledger,
		artisans:   artisans,
		rates:      rates,
		commission: commission,
	}
}

// CreateBooking records a booking with its commission applied at the current rate
func (s *PaymentService) CreateBooking(customerID string, request *models.CreateBookingRequest) (*models.Payment, error) {
	if err := utils.ValidateID(request.ArtisanID); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(request.Subtotal, "subtotal"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(request.Tax, "tax"); err != nil {
		return nil, err
	}

	artisan, err := s.artisans.GetArtisanByID(request.ArtisanID)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Artisan")
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if artisan.Status != utils.ArtisanStatusApproved {
		return nil, utils.NewBadRequestError("Artisan is not accepting bookings")
	}

	rate := models.DefaultCommissionSettings().DefaultRate
	if settings, err := s.rates.GetCommissionSettings(); err == nil {
		rate = settings.DefaultRate
	}

	subtotal := utils.Round(request.Subtotal)
	fee := s.commission.PlatformFee(subtotal, rate)
	total := utils.Round(subtotal + request.Tax)

	payment := &models.Payment{
		ID:            utils.GenerateID(),
		CustomerID:    customerID,
		ArtisanID:     request.ArtisanID,
		Service:       request.Service,
		Date:          request.Date,
		Time:          request.Time,
		Duration:      request.Duration,
		Location:      request.Location,
		HourlyRate:    request.HourlyRate,
		Subtotal:      subtotal,
		PlatformFee:   fee,
		Tax:           utils.Round(request.Tax),
		Total:         total,
		Status:        utils.StatusPending,
		PaymentStatus: utils.PaymentStatusPending,
		PayoutStatus:  utils.PayoutStatusPending,
		PaymentMethod: request.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	if err := s.ledger.CreatePayment(payment); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return payment, nil
}

// GetBooking retrieves one payment record by id
func (s *PaymentService) GetBooking(id string) (*models.Payment, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}
	payment, err := s.ledger.GetPaymentByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Booking")
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return payment, nil
}

// MarkPaid records a successful charge. A booking can only be paid once.
func (s *PaymentService) MarkPaid(id string) (*models.Payment, error) {
	return s.markPayment(id, utils.PaymentStatusPaid, utils.GenerateTransactionID())
}

// MarkFailed records a failed charge attempt
func (s *PaymentService) MarkFailed(id string) (*models.Payment, error) {
	return s.markPayment(id, utils.PaymentStatusFailed, "")
}

func (s *PaymentService) markPayment(id, to, transactionID string) (*models.Payment, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	updated, err := s.ledger.MarkPaymentStatus(id, utils.PaymentStatusPending, to, transactionID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !updated {
		payment, err := s.ledger.GetPaymentByID(id)
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Booking")
		}
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		return nil, utils.NewConflictError("Payment already settled as " + payment.PaymentStatus)
	}
	return s.GetBooking(id)
}

// StartBooking moves a paid booking into progress
func (s *PaymentService) StartBooking(id string) (*models.Payment, error) {
	return s.transition(id, utils.StatusInProgress, utils.StatusPending)
}

// CompleteBooking marks an in-progress booking done
func (s *PaymentService) CompleteBooking(id string) (*models.Payment, error) {
	return s.transition(id, utils.StatusCompleted, utils.StatusInProgress)
}

// CancelBooking cancels a booking that has not completed
func (s *PaymentService) CancelBooking(id string) (*models.Payment, error) {
	return s.transition(id, utils.StatusCancelled, utils.StatusPending, utils.StatusInProgress)
}

func (s *PaymentService) transition(id, to string, from ...string) (*models.Payment, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	updated, err := s.ledger.MarkBookingStatus(id, to, from...)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !updated {
		payment, err := s.ledger.GetPaymentByID(id)
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Booking")
		}
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		return nil, utils.NewConflictError("Booking is " + payment.Status)
	}
	return s.GetBooking(id)
}

// RateBooking attaches a rating and review to a completed, paid booking
func (s *PaymentService) RateBooking(id string, request *models.RateBookingRequest) (*models.Payment, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}
	if err := utils.ValidateRating(request.Rating); err != nil {
		return nil, err
	}

	updated, err := s.ledger.SetRating(id, request.Rating, request.Review)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !updated {
		if _, err := s.ledger.GetPaymentByID(id); err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Booking")
		}
		return nil, utils.NewBadRequestError("Only completed, paid bookings can be rated")
	}
	return s.GetBooking(id)
}
