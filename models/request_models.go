// models/request_models.go
package models

// RegisterRequest request model
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse response model
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// ApplyArtisanRequest request model
type ApplyArtisanRequest struct {
	FirstName      string   `json:"firstName" binding:"required"`
	LastName       string   `json:"lastName" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=8"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	Experience     string   `json:"experience" binding:"required"`
	HourlyRate     float64  `json:"hourlyRate" binding:"required,gt=0"`
	Description    string   `json:"description" binding:"required"`
	Portfolio      []string `json:"portfolio"`
	Certifications []string `json:"certifications"`
}

// UpdateArtisanStatusRequest request model
type UpdateArtisanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// CreateBookingRequest request model
type CreateBookingRequest struct {
	ArtisanID     string  `json:"artisanId" binding:"required"`
	Service       string  `json:"service" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Time          string  `json:"time" binding:"required"`
	Duration      string  `json:"duration" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	HourlyRate    float64 `json:"hourlyRate" binding:"required,gt=0"`
	Subtotal      float64 `json:"subtotal" binding:"required,gt=0"`
	Tax           float64 `json:"tax" binding:"min=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=card paypal apple"`
}

// CreateCategoryRequest request model
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// RateBookingRequest request model
type RateBookingRequest struct {
	Rating float64 `json:"rating" binding:"min=0,max=5"`
	Review string  `json:"review"`
}
