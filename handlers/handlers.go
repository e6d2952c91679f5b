package handlers

import (
	"github.com/KennethJT1/Artisan-backend/repository"
	"github.com/KennethJT1/Artisan-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	AuthService      *services.AuthService
	ArtisanService   *services.ArtisanService
	PaymentService   *services.PaymentService
	PayoutService    *services.PayoutService
	DashboardService *services.DashboardService
	EarningsService  *services.EarningsService
	SettingsService  *services.SettingsService
	ReportService    *services.ReportService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	db := repository.GetDB()

	userRepo := repository.NewUserRepository(db)
	artisanRepo := repository.NewArtisanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	commissionService := services.NewCommissionService()
	dashboardService := services.NewDashboardService(paymentRepo, artisanRepo, commissionService)
	settingsService := services.NewSettingsService(settingsRepo)

	return &HandlerServices{
		AuthService:      services.NewAuthService(userRepo),
		ArtisanService:   services.NewArtisanService(artisanRepo, categoryRepo, userRepo),
		PaymentService:   services.NewPaymentService(paymentRepo, artisanRepo, settingsRepo, commissionService),
		PayoutService:    services.NewPayoutService(paymentRepo, commissionService),
		DashboardService: dashboardService,
		EarningsService:  services.NewEarningsService(paymentRepo),
		SettingsService:  settingsService,
		ReportService:    services.NewReportService(dashboardService, settingsService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
