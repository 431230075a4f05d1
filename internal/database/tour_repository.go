package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// TourRepository handles tour database operations
type TourRepository struct {
	db DB
}

// NewTourRepository creates a new TourRepository
func NewTourRepository(db DB) *TourRepository {
	return &TourRepository{db: db}
}

// List returns all tours, newest first
func (r *TourRepository) List() ([]models.Tour, error) {
	var tours []models.Tour
	query := `
		SELECT id, name, description, price, duration_days, tour_type, image_url, created_at
		FROM tours
		ORDER BY created_at DESC, id DESC`

	if err := r.db.Select(&tours, query); err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, nil
}

// GetByID returns a single tour
func (r *TourRepository) GetByID(id int) (*models.Tour, error) {
	var tour models.Tour
	query := `
		SELECT id, name, description, price, duration_days, tour_type, image_url, created_at
		FROM tours
		WHERE id = $1`

	if err := r.db.Get(&tour, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	return &tour, nil
}

// ListPopular returns tours ordered by how often they have been booked,
// most booked first. Ties fall back to insertion order.
func (r *TourRepository) ListPopular(limit int) ([]models.RecommendedTour, error) {
	var tours []models.RecommendedTour
	query := `
		SELECT t.id, t.name, t.description, t.price, t.duration_days, t.tour_type, t.image_url, t.created_at,
		       COUNT(b.id) AS booking_count
		FROM tours t
		LEFT JOIN bookings b ON b.tour_id = t.id
		GROUP BY t.id, t.name, t.description, t.price, t.duration_days, t.tour_type, t.image_url, t.created_at
		ORDER BY booking_count DESC, t.id
		LIMIT $1`

	if err := r.db.Select(&tours, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list popular tours: %w", err)
	}
	return tours, nil
}

// Exists reports whether a tour with the given id exists
func (r *TourRepository) Exists(id int) (bool, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM tours WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("failed to check tour existence: %w", err)
	}
	return count > 0, nil
}

// Count returns the number of tours
func (r *TourRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM tours`); err != nil {
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}
	return count, nil
}

// Create inserts a new tour and fills in its generated fields
func (r *TourRepository) Create(tour *models.Tour) error {
	query := `
		INSERT INTO tours (name, description, price, duration_days, tour_type, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(query,
		tour.Name, tour.Description, tour.Price,
		tour.DurationDays, tour.TourType, tour.ImageURL,
	).Scan(&tour.ID, &tour.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}
