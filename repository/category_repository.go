// repository/category_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/KennethJT1/Artisan-backend/models"
)

// CategoryRepository handles database operations for service categories
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetCategoryByName retrieves a category by its name, case-insensitively
func (r *CategoryRepository) GetCategoryByName(name string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(
		`SELECT id, name, is_active FROM categories WHERE lower(name) = $1`,
		strings.ToLower(strings.TrimSpace(name)),
	).Scan(&c.ID, &c.Name, &c.IsActive)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns all active categories
func (r *CategoryRepository) ListCategories() ([]models.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, is_active FROM categories WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %v", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan category: %v", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory stores a new category
func (r *CategoryRepository) CreateCategory(c *models.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, is_active) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %v", err)
	}
	return nil
}
