package models

import (
	"time"
)

// GuideRequestStatus represents the status of a guide booking/contact request
type GuideRequestStatus string

const (
	GuideRequestStatusPending   GuideRequestStatus = "pending"
	GuideRequestStatusContacted GuideRequestStatus = "contacted"
	GuideRequestStatusConfirmed GuideRequestStatus = "confirmed"
	GuideRequestStatusCancelled GuideRequestStatus = "cancelled"
)

// ValidGuideRequestStatuses lists every status accepted by the update endpoint
var ValidGuideRequestStatuses = []GuideRequestStatus{
	GuideRequestStatusPending,
	GuideRequestStatusContacted,
	GuideRequestStatusConfirmed,
	GuideRequestStatusCancelled,
}

// IsValid reports whether s is a known guide request status
func (s GuideRequestStatus) IsValid() bool {
	for _, valid := range ValidGuideRequestStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// GuideRequestType distinguishes a contact enquiry from a booking request
type GuideRequestType string

const (
	GuideRequestTypeContact GuideRequestType = "contact"
	GuideRequestTypeBooking GuideRequestType = "booking"
)

// IsValid reports whether t is a known guide request type
func (t GuideRequestType) IsValid() bool {
	return t == GuideRequestTypeContact || t == GuideRequestTypeBooking
}

// GuideRequest represents a customer's enquiry directed at a specific guide
type GuideRequest struct {
	ID            int                `json:"id" db:"id"`
	GuideID       int                `json:"guide_id" db:"guide_id"`
	RequestType   GuideRequestType   `json:"request_type" db:"request_type"`
	CustomerName  string             `json:"customer_name" db:"customer_name"`
	CustomerEmail string             `json:"customer_email" db:"customer_email"`
	CustomerPhone *string            `json:"customer_phone,omitempty" db:"customer_phone"`
	PreferredDate *time.Time         `json:"preferred_date,omitempty" db:"preferred_date"`
	Duration      *string            `json:"duration,omitempty" db:"duration"`
	GroupSize     *string            `json:"group_size,omitempty" db:"group_size"`
	TourType      *string            `json:"tour_type,omitempty" db:"tour_type"`
	Message       string             `json:"message" db:"message"`
	Status        GuideRequestStatus `json:"status" db:"status"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`

	// Joined guide fields, populated by list/get queries only
	GuideName  *string `json:"guide_name,omitempty" db:"guide_name"`
	GuideEmail *string `json:"guide_email,omitempty" db:"guide_email"`
	GuidePhone *string `json:"guide_phone,omitempty" db:"guide_phone"`
}

// CreateGuideRequestRequest is the body for POST /api/guide-requests
type CreateGuideRequestRequest struct {
	GuideID       *int    `json:"guide_id"`
	RequestType   string  `json:"request_type"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	PreferredDate *string `json:"preferred_date,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	GroupSize     *string `json:"group_size,omitempty"`
	TourType      *string `json:"tour_type,omitempty"`
	Message       string  `json:"message"`
}

// GuideRequestFilter narrows guide request list queries
type GuideRequestFilter struct {
	Status  *GuideRequestStatus
	GuideID *int
}
