package services

import (
	"database/sql"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// UserStore is the account store as seen by authentication
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// AuthService handles account registration and login
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a customer account
func (s *AuthService) Register(request *models.RegisterRequest) (*models.User, error) {
	email := utils.NormalizeEmail(request.Email)

	if _, err := s.users.GetUserByEmail(email); err == nil {
		return nil, utils.NewConflictError(utils.ErrEmailInUse)
	} else if err != sql.ErrNoRows {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("Failed to hash password")
	}

	user := &models.User{
		ID:        utils.GenerateID(),
		FirstName: strings.TrimSpace(request.FirstName),
		LastName:  strings.TrimSpace(request.LastName),
		Email:     email,
		Password:  string(hashed),
		Role:      utils.RoleCustomer,
		Phone:     request.Phone,
		Location:  request.Location,
		CreatedAt: time.Now(),
	}

	if err := s.users.CreateUser(user); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return user, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(request *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(utils.NormalizeEmail(request.Email))
	if err == sql.ErrNoRows {
		return nil, utils.NewUnauthorizedError(utils.ErrInvalidLogin)
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		return nil, utils.NewUnauthorizedError(utils.ErrInvalidLogin)
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.NewInternalError("Failed to create token")
	}

	response := &models.LoginResponse{AccessToken: token}
	response.User.ID = user.ID
	response.User.Email = user.Email
	response.User.Role = user.Role
	return response, nil
}

// GetUser retrieves a user account by id
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("User")
	}
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return user, nil
}
