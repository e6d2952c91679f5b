// repository/settings_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/KennethJT1/Artisan-backend/models"
)

// SettingsRepository handles database operations for platform configuration.
// Both settings kinds are stored as a single upserted row; readers fall back
// to defaults when no row has been saved yet.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetCommissionSettings retrieves the saved commission rates
func (r *SettingsRepository) GetCommissionSettings() (*models.CommissionSettings, error) {
	var s models.CommissionSettings
	err := r.db.QueryRow(
		`SELECT default_rate, premium_artisans, new_artisans FROM commission_settings WHERE id = 1`,
	).Scan(&s.DefaultRate, &s.PremiumArtisans, &s.NewArtisans)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get commission settings: %v", err)
	}
	return &s, nil
}

// SaveCommissionSettings upserts the commission rates row
func (r *SettingsRepository) SaveCommissionSettings(s *models.CommissionSettings) error {
	_, err := r.db.Exec(
		`INSERT INTO commission_settings (id, default_rate, premium_artisans, new_artisans)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET
		     default_rate = excluded.default_rate,
		     premium_artisans = excluded.premium_artisans,
		     new_artisans = excluded.new_artisans`,
		s.DefaultRate, s.PremiumArtisans, s.NewArtisans,
	)
	if err != nil {
		return fmt.Errorf("failed to save commission settings: %v", err)
	}
	return nil
}

// GetPlatformSettings retrieves the saved platform configuration
func (r *SettingsRepository) GetPlatformSettings() (*models.PlatformSettings, error) {
	var s models.PlatformSettings
	err := r.db.QueryRow(
		`SELECT platform_name, support_email, max_bookings_per_artisan, auto_approval_notes
		 FROM platform_settings WHERE id = 1`,
	).Scan(&s.PlatformName, &s.SupportEmail, &s.MaxBookingsPerArtisan, &s.AutoApprovalNotes)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform settings: %v", err)
	}
	return &s, nil
}

// SavePlatformSettings upserts the platform configuration row
func (r *SettingsRepository) SavePlatformSettings(s *models.PlatformSettings) error {
	_, err := r.db.Exec(
		`INSERT INTO platform_settings (id, platform_name, support_email, max_bookings_per_artisan, auto_approval_notes)
		 VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET
		     platform_name = excluded.platform_name,
		     support_email = excluded.support_email,
		     max_bookings_per_artisan = excluded.max_bookings_per_artisan,
		     auto_approval_notes = excluded.auto_approval_notes`,
		s.PlatformName, s.SupportEmail, s.MaxBookingsPerArtisan, s.AutoApprovalNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to save platform settings: %v", err)
	}
	return nil
}
