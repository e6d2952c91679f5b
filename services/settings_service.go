package services

import (
	"database/sql"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// SettingsStore persists the single-row platform configuration
type SettingsStore interface {
	GetCommissionSettings() (*models.CommissionSettings, error)
	SaveCommissionSettings(settings *models.CommissionSettings) error
	GetPlatformSettings() (*models.PlatformSettings, error)
	SavePlatformSettings(settings *models.PlatformSettings) error
}

// SettingsService reads and writes platform configuration, falling back to
// defaults when nothing has been saved yet
type SettingsService struct {
	store SettingsStore
}

// NewSettingsService creates a new settings service
func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// GetCommissionSettings returns the stored commission rates or the defaults
func (s *SettingsService) GetCommissionSettings() (*models.CommissionSettings, error) {
	settings, err := s.store.GetCommissionSettings()
	if err == sql.ErrNoRows {
		return models.DefaultCommissionSettings(), nil
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return settings, nil
}

// UpdateCommissionSettings validates and stores new commission rates
func (s *SettingsService) UpdateCommissionSettings(settings *models.CommissionSettings) (*models.CommissionSettings, error) {
	if err := utils.ValidatePercentage(settings.DefaultRate, "defaultRate"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePercentage(settings.PremiumArtisans, "premiumArtisans"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePercentage(settings.NewArtisans, "newArtisans"); err != nil {
		return nil, err
	}

	if err := s.store.SaveCommissionSettings(settings); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return settings, nil
}

// GetPlatformSettings returns the stored platform settings or the defaults
func (s *SettingsService) GetPlatformSettings() (*models.PlatformSettings, error) {
	settings, err := s.store.GetPlatformSettings()
	if err == sql.ErrNoRows {
		return models.DefaultPlatformSettings(), nil
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return settings, nil
}

// UpdatePlatformSettings validates and stores new platform settings
func (s *SettingsService) UpdatePlatformSettings(settings *models.PlatformSettings) (*models.PlatformSettings, error) {
	if err := utils.ValidateRequired(settings.PlatformName, "platformName"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(settings.SupportEmail, "supportEmail"); err != nil {
		return nil, err
	}
	if settings.MaxBookingsPerArtisan <= 0 {
		return nil, utils.NewValidationError("maxBookingsPerArtisan must be positive")
	}

	if err := s.store.SavePlatformSettings(settings); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return settings, nil
}
