package models

import (
	"fmt"
	"time"
)

// Tour represents a bookable tour package
type Tour struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Price        float64   `json:"price" db:"price"`
	DurationDays *int      `json:"duration_days,omitempty" db:"duration_days"`
	TourType     string    `json:"tour_type" db:"tour_type"`
	ImageURL     *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Validate checks the fields required before a tour can be stored
func (t *Tour) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tour name is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("tour price cannot be negative")
	}
	return nil
}
