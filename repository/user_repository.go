// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/KennethJT1/Artisan-backend/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser stores a new user account
func (r *UserRepository) CreateUser(user *models.User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (id, first_name, last_name, email, password, role, phone, location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.Password,
		user.Role, user.Phone, user.Location, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

// GetUserByEmail retrieves a user account by email
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `SELECT id, first_name, last_name, email, password, role,
		COALESCE(phone, ''), COALESCE(location, ''), created_at
		FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(query, email))
}

// GetUserByID retrieves a user account by its ID
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := `SELECT id, first_name, last_name, email, password, role,
		COALESCE(phone, ''), COALESCE(location, ''), created_at
		FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(query, id))
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.Role, &u.Phone, &u.Location, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
