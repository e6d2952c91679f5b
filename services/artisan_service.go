package services

import (
	"database/sql"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// ArtisanStore is the artisan-profile store as seen by the application flow
type ArtisanStore interface {
	CreateWithUser(user *models.User, artisan *models.Artisan) error
	GetArtisanByID(id string) (*models.Artisan, error)
	GetArtisanByUserID(userID string) (*models.Artisan, error)
	FindByStatus(status string, offset, limit int) ([]models.Artisan, int64, error)
	UpdateStatus(id, status string) (bool, error)
}

// CategoryStore resolves and manages service categories
type CategoryStore interface {
	GetCategoryByName(name string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	CreateCategory(c *models.Category) error
}

// AccountStore is the user-account store as seen by the application flow
type AccountStore interface {
	GetUserByEmail(email string) (*models.User, error)
}

// ArtisanService handles artisan applications and the admin review flow
type ArtisanService struct {
	store      ArtisanStore
	categories CategoryStore
	accounts   AccountStore
}

// NewArtisanService creates a new artisan service
func NewArtisanService(store ArtisanStore, categories CategoryStore, accounts AccountStore) *ArtisanService {
	return &ArtisanService{
		store:      store,
		categories: categories,
		accounts:   accounts,
	}
}

// Apply creates an artisan application: a new account plus a pending profile
// in one transaction
func (s *ArtisanService) Apply(request *models.ApplyArtisanRequest) (*models.Artisan, error) {
	email := utils.NormalizeEmail(request.Email)

	if _, err := s.accounts.GetUserByEmail(email); err == nil {
		return nil, utils.NewBadRequestError(utils.ErrEmailInUse)
	} else if err != sql.ErrNoRows {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	category, err := s.categories.GetCategoryByName(request.Category)
	if err != nil || !category.IsActive {
		return nil, utils.NewNotFoundError("Category")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("Failed to hash password")
	}

	now := time.Now()
	user := &models.User{
		ID:        utils.GenerateID(),
		FirstName: strings.TrimSpace(request.FirstName),
		LastName:  strings.TrimSpace(request.LastName),
		Email:     email,
		Password:  string(hashed),
		Role:      utils.RoleArtisan,
		Phone:     request.Phone,
		Location:  request.Location,
		CreatedAt: now,
	}
	artisan := &models.Artisan{
		ID:             utils.GenerateID(),
		UserID:         user.ID,
		Category:       category.Name,
		Experience:     request.Experience,
		Description:    request.Description,
		HourlyRate:     request.HourlyRate,
		Location:       request.Location,
		Portfolio:      request.Portfolio,
		Certifications: request.Certifications,
		Status:         utils.ArtisanStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if artisan.Portfolio == nil {
		artisan.Portfolio = []string{}
	}
	if artisan.Certifications == nil {
		artisan.Certifications = []string{}
	}

	if err := s.store.CreateWithUser(user, artisan); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return artisan, nil
}

// FindApproved returns one page of approved artisan profiles
func (s *ArtisanService) FindApproved(page, limit int) (*models.ArtisanListResponse, error) {
	return s.findByStatus(utils.ArtisanStatusApproved, page, limit)
}

// FindPending returns one page of applications awaiting review
func (s *ArtisanService) FindPending(page, limit int) (*models.ArtisanListResponse, error) {
	return s.findByStatus(utils.ArtisanStatusPending, page, limit)
}

func (s *ArtisanService) findByStatus(status string, page, limit int) (*models.ArtisanListResponse, error) {
	page = utils.NormalizePage(page)
	limit = utils.NormalizeLimit(limit)

	artisans, total, err := s.store.FindByStatus(status, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if artisans == nil {
		artisans = []models.Artisan{}
	}

	return &models.ArtisanListResponse{
		Data: artisans,
		Meta: models.PaginationMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: utils.TotalPages(total, limit),
		},
	}, nil
}

// ListCategories returns the active service categories
func (s *ArtisanService) ListCategories() ([]models.Category, error) {
	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// CreateCategory registers a new service category
func (s *ArtisanService) CreateCategory(name string) (*models.Category, error) {
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetCategoryByName(name); err == nil {
		return nil, utils.NewConflictError("Category already exists")
	}

	category := &models.Category{
		ID:       utils.GenerateID(),
		Name:     strings.TrimSpace(name),
		IsActive: true,
	}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return category, nil
}

// GetArtisan retrieves one artisan profile by id
func (s *ArtisanService) GetArtisan(id string) (*models.Artisan, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}
	artisan, err := s.store.GetArtisanByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Artisan")
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return artisan, nil
}

// GetArtisanByUser retrieves the profile owned by a user account
func (s *ArtisanService) GetArtisanByUser(userID string) (*models.Artisan, error) {
	artisan, err := s.store.GetArtisanByUserID(userID)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Artisan")
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return artisan, nil
}

// ApproveArtisan marks an application approved
func (s *ArtisanService) ApproveArtisan(id string) (*models.Artisan, error) {
	return s.updateStatus(id, utils.ArtisanStatusApproved)
}

// RejectArtisan marks an application rejected
func (s *ArtisanService) RejectArtisan(id string) (*models.Artisan, error) {
	return s.updateStatus(id, utils.ArtisanStatusRejected)
}

func (s *ArtisanService) updateStatus(id, status string) (*models.Artisan, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateStatus(id, status)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !updated {
		return nil, utils.NewNotFoundError("Artisan")
	}
	return s.GetArtisan(id)
}
