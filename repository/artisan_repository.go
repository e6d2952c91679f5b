// repository/artisan_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// ArtisanRepository handles database operations for artisan profiles
type ArtisanRepository struct {
	db *sql.DB
}

// NewArtisanRepository creates a new ArtisanRepository
func NewArtisanRepository(db *sql.DB) *ArtisanRepository {
	return &ArtisanRepository{db: db}
}

// CreateWithUser stores a new user account and its artisan profile in one
// transaction; an application either fully exists or not at all
func (r *ArtisanRepository) CreateWithUser(user *models.User, artisan *models.Artisan) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO users (id, first_name, last_name, email, password, role, phone, location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.Password,
		user.Role, user.Phone, user.Location, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}

	_, err = tx.Exec(
		`INSERT INTO artisans (id, user_id, category, experience, description, hourly_rate,
		                       location, portfolio, certifications, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		artisan.ID, artisan.UserID, artisan.Category, artisan.Experience, artisan.Description,
		artisan.HourlyRate, artisan.Location, pq.Array(artisan.Portfolio),
		pq.Array(artisan.Certifications), artisan.Status, artisan.CreatedAt, artisan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert artisan: %v", err)
	}

	return tx.Commit()
}

const artisanColumns = `id, user_id, category, experience, description, hourly_rate,
	location, portfolio, certifications, status, created_at, updated_at`

// GetArtisanByID retrieves an artisan profile by its ID
func (r *ArtisanRepository) GetArtisanByID(id string) (*models.Artisan, error) {
	query := `SELECT ` + artisanColumns + ` FROM artisans WHERE id = $1`
	return scanArtisan(r.db.QueryRow(query, id))
}

// GetArtisanByUserID retrieves the artisan profile owned by a user account
func (r *ArtisanRepository) GetArtisanByUserID(userID string) (*models.Artisan, error) {
	query := `SELECT ` + artisanColumns + ` FROM artisans WHERE user_id = $1`
	return scanArtisan(r.db.QueryRow(query, userID))
}

func scanArtisan(row *sql.Row) (*models.Artisan, error) {
	var a models.Artisan
	err := row.Scan(
		&a.ID, &a.UserID, &a.Category, &a.Experience, &a.Description, &a.HourlyRate,
		&a.Location, pq.Array(&a.Portfolio), pq.Array(&a.Certifications),
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByStatus returns one page of artisan profiles in the given status with
// the total count for pagination
func (r *ArtisanRepository) FindByStatus(status string, offset, limit int) ([]models.Artisan, int64, error) {
	var total int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM artisans WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artisans: %v", err)
	}

	query := `SELECT ` + artisanColumns + ` FROM artisans WHERE status = $1
		ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.db.Query(query, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get artisans: %v", err)
	}
	defer rows.Close()

	var artisans []models.Artisan
	for rows.Next() {
		var a models.Artisan
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Category, &a.Experience, &a.Description, &a.HourlyRate,
			&a.Location, pq.Array(&a.Portfolio), pq.Array(&a.Certifications),
			&a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan artisan: %v", err)
		}
		artisans = append(artisans, a)
	}
	return artisans, total, rows.Err()
}

// UpdateStatus transitions an application's review status. Returns false
// when no artisan matched the id.
func (r *ArtisanRepository) UpdateStatus(id, status string) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE artisans SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update artisan status: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CountByStatus counts artisan profiles in the given status
func (r *ArtisanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM artisans WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count artisans: %v", err)
	}
	return count, nil
}

// CountApprovedBefore counts approved artisans whose profile was created
// before the given instant (the dashboard's previous-period baseline)
func (r *ArtisanRepository) CountApprovedBefore(t time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM artisans WHERE status = $1 AND created_at < $2`,
		utils.ArtisanStatusApproved, t,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count approved artisans: %v", err)
	}
	return count, nil
}

// CountPendingBefore counts applications still pending that were submitted
// before the given instant (the stale-application alert)
func (r *ArtisanRepository) CountPendingBefore(t time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM artisans WHERE status = $1 AND created_at < $2`,
		utils.ArtisanStatusPending, t,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending artisans: %v", err)
	}
	return count, nil
}

// PendingApplications returns pending applications joined with the applying
// account, newest first
func (r *ArtisanRepository) PendingApplications(limit int) ([]models.PendingArtisan, error) {
	query := `
		SELECT a.id, u.first_name, u.last_name, u.email, COALESCE(u.phone, ''),
		       a.category, a.location, a.experience, a.hourly_rate, a.created_at
		FROM artisans a
		JOIN users u ON u.id = a.user_id
		WHERE a.status = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(query, utils.ArtisanStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending applications: %v", err)
	}
	defer rows.Close()

	var pending []models.PendingArtisan
	for rows.Next() {
		var p models.PendingArtisan
		var firstName, lastName string
		if err := rows.Scan(&p.ID, &firstName, &lastName, &p.Email, &p.Phone,
			&p.Category, &p.Location, &p.Experience, &p.HourlyRate, &p.AppliedDate); err != nil {
			return nil, fmt.Errorf("failed to scan pending application: %v", err)
		}
		p.Name = utils.FormatFullName(firstName, lastName)
		if p.Phone == "" {
			p.Phone = "Not provided"
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}
