package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

type fakeCategoryStore struct {
	categories map[string]*models.Category
}

func (f *fakeCategoryStore) GetCategoryByName(name string) (*models.Category, error) {
	category, ok := f.categories[name]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return category, nil
}

func (f *fakeCategoryStore) ListCategories() ([]models.Category, error) {
	var active []models.Category
	for _, category := range f.categories {
		if category.IsActive {
			active = append(active, *category)
		}
	}
	return active, nil
}

func (f *fakeCategoryStore) CreateCategory(c *models.Category) error {
	f.categories[c.Name] = c
	return nil
}

type fakeAccountStore struct {
	usersByEmail map[string]*models.User
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{usersByEmail: make(map[string]*models.User)}
}

func (f *fakeAccountStore) CreateUser(user *models.User) error {
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeAccountStore) GetUserByEmail(email string) (*models.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeAccountStore) GetUserByID(id string) (*models.User, error) {
	for _, user := range f.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func artisanFixture() (*ArtisanService, *fakeArtisanStore, *fakeAccountStore) {
	store := newFakeArtisanStore()
	categories := &fakeCategoryStore{categories: map[string]*models.Category{
		"Plumbing": {ID: utils.GenerateID(), Name: "Plumbing", IsActive: true},
		"Roofing":  {ID: utils.GenerateID(), Name: "Roofing", IsActive: false},
	}}
	accounts := newFakeAccountStore()
	return NewArtisanService(store, categories, accounts), store, accounts
}

func applyRequest() *models.ApplyArtisanRequest {
	return &models.ApplyArtisanRequest{
		FirstName:  "Ade",
		LastName:   "Bello",
		Email:      "Ade.Bello@Example.com",
		Password:   "secret123",
		Phone:      "08012345678",
		Location:   "Lagos",
		Category:   "Plumbing",
		Experience: "5 years",
		HourlyRate: 50,
	}
}

func TestArtisanService_Apply(t *testing.T) {
	service, _, _ := artisanFixture()

	artisan, err := service.Apply(applyRequest())
	assert.NoError(t, err)
	assert.Equal(t, utils.ArtisanStatusPending, artisan.Status)
	assert.Equal(t, "Plumbing", artisan.Category)
	assert.NotNil(t, artisan.Portfolio)
	assert.NotNil(t, artisan.Certifications)
}

func TestArtisanService_Apply_DuplicateEmail(t *testing.T) {
	service, _, accounts := artisanFixture()
	accounts.usersByEmail["ade.bello@example.com"] = &models.User{ID: utils.GenerateID()}

	_, err := service.Apply(applyRequest())
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.ErrEmailInUse, appErr.Message)
}

func TestArtisanService_Apply_InactiveCategory(t *testing.T) {
	service, _, _ := artisanFixture()

	request := applyRequest()
	request.Category = "Roofing"
	_, err := service.Apply(request)
	assert.Error(t, err)

	request.Category = "Welding"
	_, err = service.Apply(request)
	assert.Error(t, err)
}

func TestArtisanService_ReviewFlow(t *testing.T) {
	service, store, _ := artisanFixture()

	applied, err := service.Apply(applyRequest())
	assert.NoError(t, err)

	approved, err := service.ApproveArtisan(applied.ID)
	assert.NoError(t, err)
	assert.Equal(t, utils.ArtisanStatusApproved, approved.Status)

	// The stored record reflects the transition
	stored := store.artisans[applied.ID]
	assert.Equal(t, utils.ArtisanStatusApproved, stored.Status)
}

func TestArtisanService_ApproveArtisan_UnknownID(t *testing.T) {
	service, _, _ := artisanFixture()

	_, err := service.ApproveArtisan(utils.GenerateID())
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)

	// A malformed id is a client error, not a lookup miss
	_, err = service.ApproveArtisan("not-a-uuid")
	assert.Error(t, err)
	appErr, ok = err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	accounts := newFakeAccountStore()
	service := NewAuthService(accounts)

	t.Setenv("JWT_SECRET", "test-secret")

	user, err := service.Register(&models.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "Jane@Example.com",
		Password:  "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, utils.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	// Second registration on the same address conflicts
	_, err = service.Register(&models.RegisterRequest{Email: "jane@example.com", Password: "other"})
	assert.Error(t, err)

	response, err := service.Login(&models.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, user.ID, response.User.ID)

	_, err = service.Login(&models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.Error(t, err)
}
