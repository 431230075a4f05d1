package database

import (
	"fmt"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// CustomTourRepository handles custom tour request database operations
type CustomTourRepository struct {
	db DB
}

// NewCustomTourRepository creates a new CustomTourRepository
func NewCustomTourRepository(db DB) *CustomTourRepository {
	return &CustomTourRepository{db: db}
}

const customTourColumns = `id, user_id, customer_name, customer_email, customer_phone,
	travel_date, number_of_travelers, duration_days, budget_level,
	selected_destinations, destination_names, estimated_cost, special_requests,
	status, created_at, updated_at`

// Create inserts a custom tour request and fills in its generated fields
func (r *CustomTourRepository) Create(req *models.CustomTourRequest) error {
	query := `
		INSERT INTO custom_tour_requests (
			user_id, customer_name, customer_email, customer_phone, travel_date,
			number_of_travelers, duration_days, budget_level, selected_destinations,
			destination_names, estimated_cost, special_requests, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(query,
		req.UserID, req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.TravelDate,
		req.NumberOfTravelers, req.DurationDays, req.BudgetLevel, req.SelectedDestinations,
		req.DestinationNames, req.EstimatedCost, req.SpecialRequests, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create custom tour request: %w", err)
	}
	return nil
}

// List returns all custom tour requests, newest first
func (r *CustomTourRepository) List() ([]models.CustomTourRequest, error) {
	var requests []models.CustomTourRequest
	query := `SELECT ` + customTourColumns + ` FROM custom_tour_requests ORDER BY created_at DESC`

	if err := r.db.Select(&requests, query); err != nil {
		return nil, fmt.Errorf("failed to list custom tour requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets a custom tour request's status
func (r *CustomTourRepository) UpdateStatus(id int, status models.CustomTourStatus) error {
	query := `UPDATE custom_tour_requests SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update custom tour request status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrCustomTourRequestNotFound
	}
	return nil
}
