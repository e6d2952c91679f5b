package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KennethJT1/Artisan-backend/handlers"
	"github.com/KennethJT1/Artisan-backend/middlewares"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Initialize handlers
	handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	{
		// Auth endpoints
		v1.POST("/auth/register", handlers.Register)
		v1.POST("/auth/login", handlers.Login)
		v1.GET("/auth/profile", middlewares.AuthMiddleware(), handlers.GetProfile)

		// Public artisan endpoints
		v1.POST("/artisans/apply", handlers.ApplyArtisan)
		v1.GET("/artisans", handlers.ListArtisans)
		v1.GET("/artisans/:id", handlers.GetArtisan)
		v1.GET("/categories", handlers.ListCategories)

		// Artisan earnings endpoints
		artisan := v1.Group("/artisan", middlewares.ArtisanMiddleware())
		{
			artisan.GET("/earnings", handlers.GetMyEarningsSummary)
			artisan.GET("/earnings/history", handlers.GetMyEarningsHistory)
			artisan.GET("/reviews", handlers.GetMyReviews)
		}

		// Booking endpoints
		bookings := v1.Group("/bookings", middlewares.AuthMiddleware())
		{
			bookings.POST("", handlers.CreateBooking)
			bookings.GET("/:id", handlers.GetBooking)
			bookings.POST("/:id/pay", handlers.PayBooking)
			bookings.POST("/:id/fail", handlers.FailBooking)
			bookings.POST("/:id/start", handlers.StartBooking)
			bookings.POST("/:id/complete", handlers.CompleteBooking)
			bookings.POST("/:id/cancel", handlers.CancelBooking)
			bookings.POST("/:id/rate", handlers.RateBooking)
		}

		// Admin endpoints
		admin := v1.Group("/admin", middlewares.AdminMiddleware())
		{
			admin.GET("/dashboard/stats", handlers.GetDashboardStats)
			admin.GET("/dashboard/top-artisans", handlers.GetTopArtisans)
			admin.GET("/dashboard/popular-services", handlers.GetPopularServices)
			admin.GET("/dashboard/activity", handlers.GetRecentActivity)
			admin.GET("/dashboard/alerts", handlers.GetPlatformAlerts)

			admin.GET("/payouts/pending", handlers.GetPendingPayouts)
			admin.POST("/payouts/process", handlers.ProcessPayouts)
			admin.GET("/revenue", handlers.GetRevenueSummary)
			admin.GET("/bookings/recent", handlers.GetRecentBookings)
			admin.GET("/reports/revenue", handlers.ExportRevenueReport)

			admin.POST("/categories", handlers.CreateCategory)
			admin.GET("/artisans/pending", handlers.GetPendingArtisans)
			admin.PATCH("/artisans/:id/status", handlers.UpdateArtisanStatus)
			admin.GET("/artisans/:id/earnings", handlers.GetArtisanEarnings)

			admin.GET("/settings/commission", handlers.GetCommissionSettings)
			admin.PUT("/settings/commission", handlers.UpdateCommissionSettings)
			admin.GET("/settings/platform", handlers.GetPlatformSettings)
			admin.PUT("/settings/platform", handlers.UpdatePlatformSettings)
		}
	}
}
