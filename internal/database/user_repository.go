package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures
const uniqueViolation = "23505"

// UserRepository handles user database operations
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in its generated fields
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(query,
		user.Username, user.Email, user.PasswordHash, user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail returns the user with the given email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, is_admin,
		       age, city_tier, monthly_income, owns_car, has_passport, number_of_trips,
		       created_at
		FROM users
		WHERE email = $1`

	if err := r.db.Get(&user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, is_admin,
		       age, city_tier, monthly_income, owns_car, has_passport, number_of_trips,
		       created_at
		FROM users
		WHERE id = $1`

	if err := r.db.Get(&user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Exists reports whether a user with the given id exists
func (r *UserRepository) Exists(id int) (bool, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM users WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}
