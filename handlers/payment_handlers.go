package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KennethJT1/Artisan-backend/middlewares"
	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// CreateBooking records a new booking for the authenticated customer
func CreateBooking(c *gin.Context) {
	var request models.CreateBookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	customerID := c.GetString(middlewares.ContextUserID)
	payment, err := handlerServices.PaymentService.CreateBooking(customerID, &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// GetBooking returns one booking record by id
func GetBooking(c *gin.Context) {
	payment, err := handlerServices.PaymentService.GetBooking(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// PayBooking records a successful charge against a booking
func PayBooking(c *gin.Context) {
	payment, err := handlerServices.PaymentService.MarkPaid(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// FailBooking records a failed charge attempt against a booking
func FailBooking(c *gin.Context) {
	payment, err := handlerServices.PaymentService.MarkFailed(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// StartBooking moves a booking into progress
func StartBooking(c *gin.Context) {
	payment, err := handlerServices.PaymentService.StartBooking(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// CompleteBooking marks a booking done
func CompleteBooking(c *gin.Context) {
	payment, err := handlerServices.PaymentService.CompleteBooking(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// CancelBooking cancels a booking that has not completed
func CancelBooking(c *gin.Context) {
	payment, err := handlerServices.PaymentService.CancelBooking(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// RateBooking attaches a rating and review to a completed booking
func RateBooking(c *gin.Context) {
	var request models.RateBookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := handlerServices.PaymentService.RateBooking(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}
