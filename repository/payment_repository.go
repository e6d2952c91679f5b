// repository/payment_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// PaymentRepository handles database operations for payment records. It is
// the read-side ledger for dashboard and earnings aggregation and the write
// side for payment/payout state transitions.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, customer_id, artisan_id, service, date, time, duration, location,
	hourly_rate, subtotal, platform_fee, tax, total, status, payment_status, payout_status,
	payment_method, transaction_id, rating, review, processed_at, created_at`

// CreatePayment stores a new payment record
func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	_, err := r.db.Exec(query,
		payment.ID, payment.CustomerID, payment.ArtisanID, payment.Service,
		payment.Date, payment.Time, payment.Duration, payment.Location,
		payment.HourlyRate, payment.Subtotal, payment.PlatformFee, payment.Tax, payment.Total,
		payment.Status, payment.PaymentStatus, payment.PayoutStatus,
		payment.PaymentMethod, nullString(payment.TransactionID),
		nullFloat(payment.Rating), nullString(payment.Review),
		nullTime(payment.ProcessedAt), payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}
	return nil
}

// GetPaymentByID retrieves a payment record by its ID
func (r *PaymentRepository) GetPaymentByID(id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanPayment(r.db.QueryRow(query, id))
}

func (r *PaymentRepository) scanPayment(row *sql.Row) (*models.Payment, error) {
	var p models.Payment
	var transactionID, review sql.NullString
	var rating sql.NullFloat64
	var processedAt sql.NullTime

	err := row.Scan(
		&p.ID, &p.CustomerID, &p.ArtisanID, &p.Service,
		&p.Date, &p.Time, &p.Duration, &p.Location,
		&p.HourlyRate, &p.Subtotal, &p.PlatformFee, &p.Tax, &p.Total,
		&p.Status, &p.PaymentStatus, &p.PayoutStatus,
		&p.PaymentMethod, &transactionID, &rating, &review, &processedAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if transactionID.Valid {
		p.TransactionID = transactionID.String
	}
	if review.Valid {
		p.Review = review.String
	}
	if rating.Valid {
		p.Rating = &rating.Float64
	}
	if processedAt.Valid {
		p.ProcessedAt = &processedAt.Time
	}
	return &p, nil
}

// MarkPaymentStatus transitions the payment status of a record, conditioned
// on its current value so the transition happens exactly once. Returns false
// when no row matched the precondition.
func (r *PaymentRepository) MarkPaymentStatus(id, from, to, transactionID string) (bool, error) {
	query := `
		UPDATE payments SET payment_status = $1, transaction_id = COALESCE(NULLIF($2, ''), transaction_id)
		WHERE id = $3 AND payment_status = $4
	`
	result, err := r.db.Exec(query, to, transactionID, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update payment status: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkBookingStatus transitions the booking status of a record, conditioned
// on an allowed set of source states
func (r *PaymentRepository) MarkBookingStatus(id, to string, from ...string) (bool, error) {
	query := `UPDATE payments SET status = $1 WHERE id = $2 AND status = ANY($3)`
	result, err := r.db.Exec(query, to, id, pq.Array(from))
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetRating records a customer's rating and review on a completed paid record
func (r *PaymentRepository) SetRating(id string, rating float64, review string) (bool, error) {
	query := `
		UPDATE payments SET rating = $1, review = $2
		WHERE id = $3 AND status = $4 AND payment_status = $5
	`
	result, err := r.db.Exec(query, rating, review, id, utils.StatusCompleted, utils.PaymentStatusPaid)
	if err != nil {
		return false, fmt.Errorf("failed to set rating: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ProcessPendingPayouts transitions every paid record with a pending payout
// to processed in a single conditional bulk update and returns the count
// modified. The filter in the WHERE clause is what makes concurrent callers
// safe: at most one caller's update applies to any given row.
func (r *PaymentRepository) ProcessPendingPayouts(processedAt time.Time) (int64, error) {
	query := `
		UPDATE payments SET payout_status = $1, processed_at = $2
		WHERE payment_status = $3 AND payout_status = $4
	`
	result, err := r.db.Exec(query,
		utils.PayoutStatusProcessed, processedAt,
		utils.PaymentStatusPaid, utils.PayoutStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to process payouts: %v", err)
	}
	return result.RowsAffected()
}

// SumPaidTotals returns the sum of total over paid records created within
// [start, end). Empty result sets sum to zero, never NULL.
func (r *PaymentRepository) SumPaidTotals(start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total), 0) FROM payments
		WHERE payment_status = $1 AND created_at >= $2 AND created_at < $3
	`
	var sum float64
	err := r.db.QueryRow(query, utils.PaymentStatusPaid, start, end).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum paid totals: %v", err)
	}
	return sum, nil
}

// SumPaidFees returns the sum of platform_fee over paid records created
// within [start, end)
func (r *PaymentRepository) SumPaidFees(start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(platform_fee), 0) FROM payments
		WHERE payment_status = $1 AND created_at >= $2 AND created_at < $3
	`
	var sum float64
	err := r.db.QueryRow(query, utils.PaymentStatusPaid, start, end).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum paid fees: %v", err)
	}
	return sum, nil
}

// CountActiveBookings counts records with an active booking status created
// within [start, end). Active means pending or in progress, regardless of
// payment status.
func (r *PaymentRepository) CountActiveBookings(start, end time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM payments
		WHERE status IN ($1, $2) AND created_at >= $3 AND created_at < $4
	`
	var count int64
	err := r.db.QueryRow(query, utils.StatusPending, utils.StatusInProgress, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %v", err)
	}
	return count, nil
}

// TopArtisans ranks artisans by net earnings over all paid records, joined
// with the owning account and category for display
func (r *PaymentRepository) TopArtisans(limit int) ([]models.TopArtisan, error) {
	query := `
		SELECT p.artisan_id,
		       u.first_name, u.last_name, a.category,
		       SUM(p.total - p.platform_fee) AS total_earnings,
		       COUNT(*) AS total_jobs,
		       COALESCE(AVG(p.rating), 0) AS average_rating
		FROM payments p
		JOIN artisans a ON a.id = p.artisan_id
		JOIN users u ON u.id = a.user_id
		WHERE p.payment_status = $1
		GROUP BY p.artisan_id, u.first_name, u.last_name, a.category
		ORDER BY total_earnings DESC, p.artisan_id
		LIMIT $2
	`
	rows, err := r.db.Query(query, utils.PaymentStatusPaid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top artisans: %v", err)
	}
	defer rows.Close()

	var artisans []models.TopArtisan
	for rows.Next() {
		var a models.TopArtisan
		var firstName, lastName string
		if err := rows.Scan(&a.ArtisanID, &firstName, &lastName, &a.Category,
			&a.TotalEarnings, &a.TotalJobs, &a.AverageRating); err != nil {
			return nil, fmt.Errorf("failed to scan top artisan: %v", err)
		}
		a.Name = utils.FormatFullName(firstName, lastName)
		artisans = append(artisans, a)
	}
	return artisans, rows.Err()
}

// PopularServices ranks service labels by paid booking count
func (r *PaymentRepository) PopularServices(limit int) ([]models.PopularService, error) {
	query := `
		SELECT service, COUNT(*) AS bookings, SUM(total) AS revenue
		FROM payments
		WHERE payment_status = $1
		GROUP BY service
		ORDER BY bookings DESC, service
		LIMIT $2
	`
	rows, err := r.db.Query(query, utils.PaymentStatusPaid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular services: %v", err)
	}
	defer rows.Close()

	var services []models.PopularService
	for rows.Next() {
		var s models.PopularService
		if err := rows.Scan(&s.Category, &s.Bookings, &s.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan popular service: %v", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// PendingPayoutSummary aggregates all paid records still awaiting payout:
// net total owed, distinct artisans owed, record count and the platform fee
// share (used by the pending-payout alert)
func (r *PaymentRepository) PendingPayoutSummary() (*models.PendingPayoutSummary, error) {
	query := `
		SELECT COALESCE(SUM(total - platform_fee), 0),
		       COUNT(DISTINCT artisan_id),
		       COUNT(*),
		       COALESCE(SUM(platform_fee), 0)
		FROM payments
		WHERE payment_status = $1 AND payout_status = $2
	`
	var summary models.PendingPayoutSummary
	err := r.db.QueryRow(query, utils.PaymentStatusPaid, utils.PayoutStatusPending).Scan(
		&summary.Total, &summary.ArtisanCount, &summary.RecordCount, &summary.FeeTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending payout summary: %v", err)
	}
	return &summary, nil
}

// RevenueSummary reconciles all-time paid money movement
func (r *PaymentRepository) RevenueSummary() (*models.RevenueSummary, error) {
	query := `
		SELECT COALESCE(SUM(total), 0),
		       COALESCE(SUM(platform_fee), 0),
		       COALESCE(SUM(total - platform_fee), 0)
		FROM payments
		WHERE payment_status = $1
	`
	var summary models.RevenueSummary
	err := r.db.QueryRow(query, utils.PaymentStatusPaid).Scan(
		&summary.TotalRevenue, &summary.CommissionEarned, &summary.ArtisanPayouts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue summary: %v", err)
	}
	return &summary, nil
}

// RecentBookings returns the latest booking records joined with customer and
// artisan names, newest first
func (r *PaymentRepository) RecentBookings(limit int) ([]models.BookingView, error) {
	return r.bookingViews(`
		SELECT p.id, cu.first_name, cu.last_name, au.first_name, au.last_name,
		       p.service, p.total, p.platform_fee, p.status, p.location, p.created_at
		FROM payments p
		JOIN users cu ON cu.id = p.customer_id
		JOIN artisans a ON a.id = p.artisan_id
		JOIN users au ON au.id = a.user_id
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit)
}

// RecentCompleted returns the latest completed bookings, newest first
func (r *PaymentRepository) RecentCompleted(limit int) ([]models.BookingView, error) {
	return r.bookingViews(`
		SELECT p.id, cu.first_name, cu.last_name, au.first_name, au.last_name,
		       p.service, p.total, p.platform_fee, p.status, p.location, p.created_at
		FROM payments p
		JOIN users cu ON cu.id = p.customer_id
		JOIN artisans a ON a.id = p.artisan_id
		JOIN users au ON au.id = a.user_id
		WHERE p.status = $2
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit, utils.StatusCompleted)
}

func (r *PaymentRepository) bookingViews(query string, limit int, args ...interface{}) ([]models.BookingView, error) {
	queryArgs := append([]interface{}{limit}, args...)
	rows, err := r.db.Query(query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %v", err)
	}
	defer rows.Close()

	var bookings []models.BookingView
	for rows.Next() {
		var b models.BookingView
		var cuFirst, cuLast, auFirst, auLast string
		if err := rows.Scan(&b.ID, &cuFirst, &cuLast, &auFirst, &auLast,
			&b.Service, &b.Amount, &b.Commission, &b.Status, &b.Location, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %v", err)
		}
		b.CustomerName = utils.FormatFullName(cuFirst, cuLast)
		b.ArtisanName = utils.FormatFullName(auFirst, auLast)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ArtisanPaidTotals returns an artisan's all-time net earnings and paid job count
func (r *PaymentRepository) ArtisanPaidTotals(artisanID string) (float64, int64, error) {
	query := `
		SELECT COALESCE(SUM(total - platform_fee), 0), COUNT(*)
		FROM payments
		WHERE artisan_id = $1 AND payment_status = $2
	`
	var net float64
	var jobs int64
	err := r.db.QueryRow(query, artisanID, utils.PaymentStatusPaid).Scan(&net, &jobs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get artisan totals: %v", err)
	}
	return net, jobs, nil
}

// ArtisanMonthlyNet buckets an artisan's paid net earnings by the calendar
// month of record creation. Only months that appear in the paid set are
// returned.
func (r *PaymentRepository) ArtisanMonthlyNet(artisanID string) ([]models.MonthlyEarnings, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month,
		       SUM(total - platform_fee) AS earnings,
		       COUNT(*) AS jobs
		FROM payments
		WHERE artisan_id = $1 AND payment_status = $2
		GROUP BY month
		ORDER BY month
	`
	rows, err := r.db.Query(query, artisanID, utils.PaymentStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly earnings: %v", err)
	}
	defer rows.Close()

	var months []models.MonthlyEarnings
	for rows.Next() {
		var m models.MonthlyEarnings
		if err := rows.Scan(&m.Month, &m.Earnings, &m.Jobs); err != nil {
			return nil, fmt.Errorf("failed to scan monthly earnings: %v", err)
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// ArtisanPaidHistory returns one page of an artisan's paid records, newest
// first, with the total paid record count for pagination
func (r *PaymentRepository) ArtisanPaidHistory(artisanID string, offset, limit int) ([]models.EarningsEntry, int64, error) {
	var total int64
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM payments WHERE artisan_id = $1 AND payment_status = $2`,
		artisanID, utils.PaymentStatusPaid,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count paid history: %v", err)
	}

	query := `
		SELECT id, service, total, platform_fee, total - platform_fee, created_at
		FROM payments
		WHERE artisan_id = $1 AND payment_status = $2
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`
	rows, err := r.db.Query(query, artisanID, utils.PaymentStatusPaid, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paid history: %v", err)
	}
	defer rows.Close()

	var entries []models.EarningsEntry
	for rows.Next() {
		var e models.EarningsEntry
		if err := rows.Scan(&e.PaymentID, &e.Service, &e.Gross, &e.Commission, &e.Net, &e.Date); err != nil {
			return nil, 0, fmt.Errorf("failed to scan earnings entry: %v", err)
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// ArtisanRatedRecords returns one page of an artisan's rated records, newest
// first, with the total rated count for pagination
func (r *PaymentRepository) ArtisanRatedRecords(artisanID string, offset, limit int) ([]models.ReviewEntry, int64, error) {
	var total int64
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM payments WHERE artisan_id = $1 AND rating IS NOT NULL`,
		artisanID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %v", err)
	}

	query := `
		SELECT p.id, u.first_name, u.last_name, p.service, p.rating, COALESCE(p.review, ''), p.created_at
		FROM payments p
		JOIN users u ON u.id = p.customer_id
		WHERE p.artisan_id = $1 AND p.rating IS NOT NULL
		ORDER BY p.created_at DESC
		OFFSET $2 LIMIT $3
	`
	rows, err := r.db.Query(query, artisanID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get reviews: %v", err)
	}
	defer rows.Close()

	var entries []models.ReviewEntry
	for rows.Next() {
		var e models.ReviewEntry
		var firstName, lastName string
		if err := rows.Scan(&e.PaymentID, &firstName, &lastName, &e.Service, &e.Rating, &e.Review, &e.Date); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %v", err)
		}
		e.CustomerName = utils.FormatFullName(firstName, lastName)
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
