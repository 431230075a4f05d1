package models

import (
	"time"
)

// Guide represents a professional tour guide listed on the platform
type Guide struct {
	ID             int         `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	Specialty      string      `json:"specialty" db:"specialty"`
	Experience     *string     `json:"experience,omitempty" db:"experience"`
	Rating         float64     `json:"rating" db:"rating"`
	Languages      StringArray `json:"languages" db:"languages"`
	ImageURL       *string     `json:"image_url,omitempty" db:"image_url"`
	Bio            *string     `json:"bio,omitempty" db:"bio"`
	ToursCompleted int         `json:"tours_completed" db:"tours_completed"`
	Specialities   StringArray `json:"specialities" db:"specialities"`
	Phone          *string     `json:"phone,omitempty" db:"phone"`
	Email          *string     `json:"email,omitempty" db:"email"`
	PriceRange     *string     `json:"price_range,omitempty" db:"price_range"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}
