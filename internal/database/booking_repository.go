package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// BookingRepository handles booking database operations
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// bookingSelect joins the tour and user display fields onto every booking row
const bookingSelect = `
	SELECT b.id, b.user_id, b.tour_id, b.booking_date, b.travel_date, b.guests,
	       b.total_price, b.ai_suggested_price, b.customer_name, b.customer_email,
	       b.customer_phone, b.special_requests, b.status, b.package_type,
	       b.preferred_star_rating, b.number_of_children,
	       t.name AS tour_name, t.description AS tour_description, t.image_url AS tour_image,
	       u.username AS username, u.email AS user_email
	FROM bookings b
	JOIN tours t ON b.tour_id = t.id
	LEFT JOIN users u ON b.user_id = u.id`

// Create inserts a booking and reads it back with its joined display
// fields in a single transaction
func (r *BookingRepository) Create(nb *models.NewBooking, userID *int, aiSuggestedPrice *float64, status models.BookingStatus) (*models.Booking, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO bookings (
			user_id, tour_id, travel_date, guests, total_price, ai_suggested_price,
			customer_name, customer_email, customer_phone, special_requests,
			status, package_type, preferred_star_rating, number_of_children
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var bookingID int
	err = tx.QueryRowx(insertQuery,
		userID, nb.TourID, nb.TravelDate, nb.Guests, nb.TotalPrice, aiSuggestedPrice,
		nb.CustomerName, nb.CustomerEmail, nb.CustomerPhone, nb.SpecialRequests,
		status, nb.PackageType, nb.PreferredStarRating, nb.NumberOfChildren,
	).Scan(&bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	var booking models.Booking
	if err := tx.Get(&booking, bookingSelect+` WHERE b.id = $1`, bookingID); err != nil {
		return nil, fmt.Errorf("failed to read back booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}
	return &booking, nil
}

// List returns bookings matching the filter, newest first
func (r *BookingRepository) List(filter models.BookingFilter) ([]models.Booking, error) {
	query := bookingSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(" AND b.user_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	query += " ORDER BY b.booking_date DESC"

	var bookings []models.Booking
	if err := r.db.Select(&bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetByID returns a single booking with its joined display fields
func (r *BookingRepository) GetByID(id int) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Get(&booking, bookingSelect+` WHERE b.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// UpdateStatus sets the booking's status unconditionally
func (r *BookingRepository) UpdateStatus(id int, status models.BookingStatus) error {
	result, err := r.db.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking permanently
func (r *BookingRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// CountConfirmedForDate returns the number of confirmed bookings
// travelling on the given date. The pricing advisor reads this as its
// demand signal.
func (r *BookingRepository) CountConfirmedForDate(travelDate time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE travel_date = $1 AND status = $2`
	if err := r.db.Get(&count, query, travelDate, models.BookingStatusConfirmed); err != nil {
		return 0, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	return count, nil
}

// DateDemand is the confirmed booking count for one upcoming travel date
type DateDemand struct {
	TravelDate time.Time `db:"travel_date"`
	Count      int       `db:"count"`
}

// ConfirmedCountsByDate returns confirmed booking counts for every
// upcoming travel date
func (r *BookingRepository) ConfirmedCountsByDate() ([]DateDemand, error) {
	var rows []DateDemand
	query := `
		SELECT travel_date, COUNT(*) AS count
		FROM bookings
		WHERE status = $1 AND travel_date >= CURRENT_DATE
		GROUP BY travel_date
		ORDER BY travel_date`

	if err := r.db.Select(&rows, query, models.BookingStatusConfirmed); err != nil {
		return nil, fmt.Errorf("failed to count confirmed bookings by date: %w", err)
	}
	return rows, nil
}
