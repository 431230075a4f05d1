package database

import (
	"fmt"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// GuideRequestRepository handles guide request database operations
type GuideRequestRepository struct {
	db DB
}

// NewGuideRequestRepository creates a new GuideRequestRepository
func NewGuideRequestRepository(db DB) *GuideRequestRepository {
	return &GuideRequestRepository{db: db}
}

// guideRequestSelect joins the guide's contact fields onto every request row
const guideRequestSelect = `
	SELECT gr.id, gr.guide_id, gr.request_type, gr.customer_name, gr.customer_email,
	       gr.customer_phone, gr.preferred_date, gr.duration, gr.group_size,
	       gr.tour_type, gr.message, gr.status, gr.created_at, gr.updated_at,
	       g.name AS guide_name, g.email AS guide_email, g.phone AS guide_phone
	FROM guide_requests gr
	JOIN guides g ON gr.guide_id = g.id`

// Create inserts a guide request and reads it back with the guide's
// contact fields in a single transaction
func (r *GuideRequestRepository) Create(req *models.GuideRequest) (*models.GuideRequest, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO guide_requests (
			guide_id, request_type, customer_name, customer_email, customer_phone,
			preferred_date, duration, group_size, tour_type, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var requestID int
	err = tx.QueryRowx(insertQuery,
		req.GuideID, req.RequestType, req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.PreferredDate, req.Duration, req.GroupSize, req.TourType, req.Message, req.Status,
	).Scan(&requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to create guide request: %w", err)
	}

	var created models.GuideRequest
	if err := tx.Get(&created, guideRequestSelect+` WHERE gr.id = $1`, requestID); err != nil {
		return nil, fmt.Errorf("failed to read back guide request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit guide request: %w", err)
	}
	return &created, nil
}

// List returns guide requests matching the filter, newest first
func (r *GuideRequestRepository) List(filter models.GuideRequestFilter) ([]models.GuideRequest, error) {
	query := guideRequestSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND gr.status = $%d", len(args))
	}
	if filter.GuideID != nil {
		args = append(args, *filter.GuideID)
		query += fmt.Sprintf(" AND gr.guide_id = $%d", len(args))
	}
	query += " ORDER BY gr.created_at DESC"

	var requests []models.GuideRequest
	if err := r.db.Select(&requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list guide requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets a guide request's status
func (r *GuideRequestRepository) UpdateStatus(id int, status models.GuideRequestStatus) error {
	query := `UPDATE guide_requests SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update guide request status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrGuideRequestNotFound
	}
	return nil
}
