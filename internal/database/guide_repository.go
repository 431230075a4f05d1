package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// GuideRepository handles guide database operations
type GuideRepository struct {
	db DB
}

// NewGuideRepository creates a new GuideRepository
func NewGuideRepository(db DB) *GuideRepository {
	return &GuideRepository{db: db}
}

const guideColumns = `id, name, specialty, experience, rating, languages, image_url,
	bio, tours_completed, specialities, phone, email, price_range, created_at`

// List returns all guides, highest rated first
func (r *GuideRepository) List() ([]models.Guide, error) {
	var guides []models.Guide
	query := `SELECT ` + guideColumns + ` FROM guides ORDER BY rating DESC`

	if err := r.db.Select(&guides, query); err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	return guides, nil
}

// GetByID returns a single guide
func (r *GuideRepository) GetByID(id int) (*models.Guide, error) {
	var guide models.Guide
	query := `SELECT ` + guideColumns + ` FROM guides WHERE id = $1`

	if err := r.db.Get(&guide, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("failed to get guide: %w", err)
	}
	return &guide, nil
}

// Exists reports whether a guide with the given id exists
func (r *GuideRepository) Exists(id int) (bool, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM guides WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("failed to check guide existence: %w", err)
	}
	return count > 0, nil
}

// ReplaceAll deletes every guide and inserts the given set in one transaction
func (r *GuideRepository) ReplaceAll(guides []models.Guide) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM guides`); err != nil {
		return 0, fmt.Errorf("failed to clear guides: %w", err)
	}

	insertQuery := `
		INSERT INTO guides (name, specialty, experience, rating, languages, image_url,
			bio, tours_completed, specialities, phone, email, price_range)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, g := range guides {
		if _, err := tx.Exec(insertQuery,
			g.Name, g.Specialty, g.Experience, g.Rating, g.Languages, g.ImageURL,
			g.Bio, g.ToursCompleted, g.Specialities, g.Phone, g.Email, g.PriceRange,
		); err != nil {
			return 0, fmt.Errorf("failed to insert guide %q: %w", g.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit guides: %w", err)
	}
	return len(guides), nil
}
