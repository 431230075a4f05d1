package models

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatuses lists every status accepted by the update endpoint
var ValidBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
}

// IsValid reports whether s is a known booking status
func (s BookingStatus) IsValid() bool {
	for _, valid := range ValidBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether moving to next follows the forward-only
// graph (pending -> confirmed -> cancelled, no way out of cancelled).
// The update endpoint does not enforce this; the service only logs a
// warning when a transition goes backward.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	default:
		return false
	}
}

// Booking represents a customer's reservation against a tour
type Booking struct {
	ID                  int           `json:"id" db:"id"`
	UserID              *int          `json:"user_id,omitempty" db:"user_id"`
	TourID              int           `json:"tour_id" db:"tour_id"`
	BookingDate         time.Time     `json:"booking_date" db:"booking_date"`
	TravelDate          time.Time     `json:"travel_date" db:"travel_date"`
	Guests              int           `json:"guests" db:"guests"`
	TotalPrice          float64       `json:"total_price" db:"total_price"`
	AISuggestedPrice    *float64      `json:"ai_suggested_price,omitempty" db:"ai_suggested_price"`
	CustomerName        string        `json:"customer_name" db:"customer_name"`
	CustomerEmail       string        `json:"customer_email" db:"customer_email"`
	CustomerPhone       string        `json:"customer_phone" db:"customer_phone"`
	SpecialRequests     *string       `json:"special_requests,omitempty" db:"special_requests"`
	Status              BookingStatus `json:"status" db:"status"`
	PackageType         string        `json:"package_type" db:"package_type"`
	PreferredStarRating int           `json:"preferred_star_rating" db:"preferred_star_rating"`
	NumberOfChildren    int           `json:"number_of_children" db:"number_of_children"`

	// Joined display fields, populated by list/get queries only
	TourName        *string `json:"tour_name,omitempty" db:"tour_name"`
	TourDescription *string `json:"tour_description,omitempty" db:"tour_description"`
	TourImage       *string `json:"tour_image,omitempty" db:"tour_image"`
	Username        *string `json:"username,omitempty" db:"username"`
	UserEmail       *string `json:"user_email,omitempty" db:"user_email"`
}

// CreateBookingRequest is the raw request body for POST /api/bookings.
// Numeric fields arrive loosely typed (clients send both numbers and
// strings); pkg/validator coerces and range-checks them in order.
type CreateBookingRequest struct {
	TourID              interface{} `json:"tour_id"`
	TravelDate          interface{} `json:"travel_date"`
	Guests              interface{} `json:"guests"`
	TotalPrice          interface{} `json:"total_price"`
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email"`
	CustomerPhone       string      `json:"customer_phone"`
	PackageType         string      `json:"package_type"`
	SpecialRequests     *string     `json:"special_requests,omitempty"`
	PreferredStarRating *int        `json:"preferred_star_rating,omitempty"`
	NumberOfChildren    *int        `json:"number_of_children,omitempty"`
}

// NewBooking is a validated, normalized booking request ready to persist
type NewBooking struct {
	TourID              int
	TravelDate          time.Time
	Guests              int
	TotalPrice          float64
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	PackageType         string
	SpecialRequests     *string
	PreferredStarRating int
	NumberOfChildren    int
}

// UpdateBookingStatusRequest is the body for PUT /api/bookings/:id
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingFilter narrows booking list queries
type BookingFilter struct {
	UserID *int
	Status *BookingStatus
}

// IsCancelled reports whether the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
