package utils

const (
	// Booking lifecycle
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

	// Payment lifecycle
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	// Payout lifecycle
	PayoutStatusPending   = "pending"
	PayoutStatusProcessed = "processed"
	PayoutStatusFailed    = "failed"

	// Artisan application status
	ArtisanStatusPending  = "pending"
	ArtisanStatusApproved = "approved"
	ArtisanStatusRejected = "rejected"

	// User roles
	RoleCustomer = "customer"
	RoleArtisan  = "artisan"
	RoleAdmin    = "admin"

	// Timeframe tokens for dashboard windows
	Timeframe7Days   = "7days"
	Timeframe30Days  = "30days"
	Timeframe90Days  = "90days"
	Timeframe1Year   = "1year"
	TimeframeDefault = Timeframe30Days

	// Transaction ID generation
	TransactionIDPrefix  = "txn_"
	TransactionIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	TransactionIDLength  = 20

	// Pagination defaults
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// HTTP status messages
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidIdentifier = "Invalid identifier"
	ErrEmailInUse        = "Email already in use"
	ErrInvalidLogin      = "Invalid credentials"
	ErrFailedToStore     = "Failed to store data"
	ErrFailedToRetrieve  = "Failed to retrieve data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Artisan applications older than this many hours raise a dashboard warning
	StaleApplicationHours = 48
)
