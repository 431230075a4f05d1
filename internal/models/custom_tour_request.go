package models

import (
	"time"
)

// CustomTourStatus represents the review pipeline state of a custom tour request
type CustomTourStatus string

const (
	CustomTourStatusPending   CustomTourStatus = "pending"
	CustomTourStatusReviewed  CustomTourStatus = "reviewed"
	CustomTourStatusQuoted    CustomTourStatus = "quoted"
	CustomTourStatusConfirmed CustomTourStatus = "confirmed"
	CustomTourStatusCancelled CustomTourStatus = "cancelled"
)

// ValidCustomTourStatuses lists every status accepted by the update endpoint
var ValidCustomTourStatuses = []CustomTourStatus{
	CustomTourStatusPending,
	CustomTourStatusReviewed,
	CustomTourStatusQuoted,
	CustomTourStatusConfirmed,
	CustomTourStatusCancelled,
}

// IsValid reports whether s is a known custom tour request status
func (s CustomTourStatus) IsValid() bool {
	for _, valid := range ValidCustomTourStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// BudgetLevel buckets a custom tour request by spend appetite
type BudgetLevel string

const (
	BudgetLevelLow    BudgetLevel = "low"
	BudgetLevelMedium BudgetLevel = "medium"
	BudgetLevelHigh   BudgetLevel = "high"
	BudgetLevelLuxury BudgetLevel = "luxury"
)

// ValidBudgetLevels lists the accepted budget levels
var ValidBudgetLevels = []BudgetLevel{
	BudgetLevelLow,
	BudgetLevelMedium,
	BudgetLevelHigh,
	BudgetLevelLuxury,
}

// IsValid reports whether b is a known budget level
func (b BudgetLevel) IsValid() bool {
	for _, valid := range ValidBudgetLevels {
		if b == valid {
			return true
		}
	}
	return false
}

// CustomTourRequest represents a bespoke itinerary request built by a customer
type CustomTourRequest struct {
	ID                   int              `json:"id" db:"id"`
	UserID               *int             `json:"user_id,omitempty" db:"user_id"`
	CustomerName         string           `json:"customer_name" db:"customer_name"`
	CustomerEmail        string           `json:"customer_email" db:"customer_email"`
	CustomerPhone        string           `json:"customer_phone" db:"customer_phone"`
	TravelDate           *time.Time       `json:"travel_date,omitempty" db:"travel_date"`
	NumberOfTravelers    int              `json:"number_of_travelers" db:"number_of_travelers"`
	DurationDays         int              `json:"duration_days" db:"duration_days"`
	BudgetLevel          BudgetLevel      `json:"budget_level" db:"budget_level"`
	SelectedDestinations StringArray      `json:"selected_destinations" db:"selected_destinations"`
	DestinationNames     StringArray      `json:"destination_names" db:"destination_names"`
	EstimatedCost        float64          `json:"estimated_cost" db:"estimated_cost"`
	SpecialRequests      *string          `json:"special_requests,omitempty" db:"special_requests"`
	Status               CustomTourStatus `json:"status" db:"status"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at" db:"updated_at"`
}

// CreateCustomTourRequestRequest is the body for POST /api/custom-tour-requests.
// Numeric fields arrive loosely typed and are coerced by pkg/validator.
type CreateCustomTourRequestRequest struct {
	CustomerName         string      `json:"customer_name"`
	CustomerEmail        string      `json:"customer_email"`
	CustomerPhone        string      `json:"customer_phone"`
	TravelDate           *string     `json:"travel_date,omitempty"`
	NumberOfTravelers    interface{} `json:"number_of_travelers"`
	DurationDays         interface{} `json:"duration_days"`
	BudgetLevel          string      `json:"budget_level"`
	SelectedDestinations []string    `json:"selected_destinations"`
	DestinationNames     []string    `json:"destination_names,omitempty"`
	EstimatedCost        interface{} `json:"estimated_cost"`
	SpecialRequests      *string     `json:"special_requests,omitempty"`
}
