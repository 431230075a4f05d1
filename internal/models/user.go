package models

import (
	"time"
)

// User represents a registered account. The profile columns feed the
// pricing advisor; all of them are optional and default when absent.
type User struct {
	ID            int       `json:"id" db:"id"`
	Username      string    `json:"username" db:"username"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	IsAdmin       bool      `json:"is_admin" db:"is_admin"`
	Age           *int      `json:"age,omitempty" db:"age"`
	CityTier      *int      `json:"city_tier,omitempty" db:"city_tier"`
	MonthlyIncome *float64  `json:"monthly_income,omitempty" db:"monthly_income"`
	OwnsCar       *bool     `json:"owns_car,omitempty" db:"owns_car"`
	HasPassport   *bool     `json:"has_passport,omitempty" db:"has_passport"`
	NumberOfTrips *int      `json:"number_of_trips,omitempty" db:"number_of_trips"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is the body for POST /api/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful register or login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
