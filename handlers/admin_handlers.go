package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// GetDashboardStats returns the four admin dashboard metric cards
func GetDashboardStats(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", utils.TimeframeDefault)

	stats, err := handlerServices.DashboardService.GetDashboardStats(timeframe)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stats)
}

// GetTopArtisans returns the three highest earning artisans
func GetTopArtisans(c *gin.Context) {
	artisans, err := handlerServices.DashboardService.GetTopArtisans()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, artisans)
}

// GetPopularServices returns the four most booked service categories
func GetPopularServices(c *gin.Context) {
	services, err := handlerServices.DashboardService.GetPopularCategories()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, services)
}

// GetPendingPayouts returns the payout panel figures
func GetPendingPayouts(c *gin.Context) {
	payouts, err := handlerServices.DashboardService.GetPendingPayouts()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payouts)
}

// ProcessPayouts settles every eligible pending payout in one pass
func ProcessPayouts(c *gin.Context) {
	result, err := handlerServices.PayoutService.ProcessPendingPayouts()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// GetRevenueSummary returns the all-time money reconciliation
func GetRevenueSummary(c *gin.Context) {
	summary, err := handlerServices.DashboardService.GetRevenueSummary()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}

// GetRecentBookings returns the latest booking records for the admin panel
func GetRecentBookings(c *gin.Context) {
	bookings, err := handlerServices.DashboardService.GetRecentBookings()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, bookings)
}

// GetPendingArtisans returns applications awaiting review
func GetPendingArtisans(c *gin.Context) {
	artisans, err := handlerServices.DashboardService.GetPendingArtisans()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, artisans)
}

// GetRecentActivity returns the admin activity feed
func GetRecentActivity(c *gin.Context) {
	activity, err := handlerServices.DashboardService.GetRecentActivity()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, activity)
}

// GetPlatformAlerts returns operational warnings for the admin panel
func GetPlatformAlerts(c *gin.Context) {
	alerts, err := handlerServices.DashboardService.GetPlatformAlerts()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, alerts)
}

// UpdateArtisanStatus approves or rejects an application
func UpdateArtisanStatus(c *gin.Context) {
	var request models.UpdateArtisanStatusRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	id := c.Param("id")
	var artisan *models.Artisan
	var err error
	if request.Status == utils.ArtisanStatusApproved {
		artisan, err = handlerServices.ArtisanService.ApproveArtisan(id)
	} else {
		artisan, err = handlerServices.ArtisanService.RejectArtisan(id)
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, artisan)
}

// GetArtisanEarnings returns any artisan's lifetime earnings for admin review
func GetArtisanEarnings(c *gin.Context) {
	artisan, err := handlerServices.ArtisanService.GetArtisan(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary, err := handlerServices.EarningsService.GetEarningsSummary(artisan.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}

// GetCommissionSettings returns the active commission rates
func GetCommissionSettings(c *gin.Context) {
	settings, err := handlerServices.SettingsService.GetCommissionSettings()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settings)
}

// UpdateCommissionSettings stores new commission rates
func UpdateCommissionSettings(c *gin.Context) {
	var settings models.CommissionSettings

	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	updated, err := handlerServices.SettingsService.UpdateCommissionSettings(&settings)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, updated)
}

// GetPlatformSettings returns the stored platform settings
func GetPlatformSettings(c *gin.Context) {
	settings, err := handlerServices.SettingsService.GetPlatformSettings()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settings)
}

// UpdatePlatformSettings stores new platform settings
func UpdatePlatformSettings(c *gin.Context) {
	var settings models.PlatformSettings

	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	updated, err := handlerServices.SettingsService.UpdatePlatformSettings(&settings)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, updated)
}
