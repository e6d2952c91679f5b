// models/models.go
package models

import "time"

// User represents a platform account (customer, artisan or admin)
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Artisan represents a service-provider profile, distinct from the account
// that owns it
type Artisan struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Category       string    `json:"category"`
	Experience     string    `json:"experience"`
	Description    string    `json:"description"`
	HourlyRate     float64   `json:"hourlyRate"`
	Location       string    `json:"location"`
	Portfolio      []string  `json:"portfolio"`
	Certifications []string  `json:"certifications"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Category represents a service category artisans can apply under
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Payment is the single source of truth for all money movement: one record
// per booking transaction, carrying the booking lifecycle (status), the
// customer payment lifecycle (paymentStatus) and the artisan payout
// lifecycle (payoutStatus).
//
// Invariants: total = subtotal + tax, platformFee <= total, and the net
// artisan payout is total - platformFee.
type Payment struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	ArtisanID     string     `json:"artisanId"`
	Service       string     `json:"service"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Duration      string     `json:"duration"`
	Location      string     `json:"location"`
	HourlyRate    float64    `json:"hourlyRate"`
	Subtotal      float64    `json:"subtotal"`
	PlatformFee   float64    `json:"platformFee"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	PayoutStatus  string     `json:"payoutStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	Review        string     `json:"review,omitempty"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NetPayout is the artisan's share of this record
func (p *Payment) NetPayout() float64 {
	return p.Total - p.PlatformFee
}

// CommissionSettings holds the platform's commission rates, persisted as a
// single settings row and defaulted when none exists
type CommissionSettings struct {
	DefaultRate     float64 `json:"defaultRate"`
	PremiumArtisans float64 `json:"premiumArtisans"`
	NewArtisans     float64 `json:"newArtisans"`
}

// PlatformSettings holds general platform configuration
type PlatformSettings struct {
	PlatformName          string `json:"platformName"`
	SupportEmail          string `json:"supportEmail"`
	MaxBookingsPerArtisan int    `json:"maxBookingsPerArtisan"`
	AutoApprovalNotes     string `json:"autoApprovalNotes"`
}

// DefaultCommissionSettings returns the rates used before an admin saves any
func DefaultCommissionSettings() *CommissionSettings {
	return &CommissionSettings{
		DefaultRate:     15,
		PremiumArtisans: 12,
		NewArtisans:     10,
	}
}

// DefaultPlatformSettings returns the configuration used before an admin saves any
func DefaultPlatformSettings() *PlatformSettings {
	return &PlatformSettings{
		PlatformName:          "ArtisanHub",
		SupportEmail:          "support@artisanhub.com",
		MaxBookingsPerArtisan: 10,
		AutoApprovalNotes:     "Configure automatic approval criteria...",
	}
}

// PaginationMeta describes one page of a list response
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
