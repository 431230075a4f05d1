package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/mathangi54/Travelling-System/internal/models"
)

const (
	// MinTravelers and MaxTravelers bound the group size of a custom tour
	MinTravelers = 1
	MaxTravelers = 50

	// MinDurationDays and MaxDurationDays bound a custom itinerary's length
	MinDurationDays = 1
	MaxDurationDays = 30
)

// CustomTourValidator checks raw custom tour requests
type CustomTourValidator struct {
	now func() time.Time
}

// NewCustomTourValidator creates a custom tour validator using the wall clock
func NewCustomTourValidator() *CustomTourValidator {
	return &CustomTourValidator{now: time.Now}
}

// Validate checks required fields, email, budget level, the optional travel
// date and numeric ranges, then returns the request ready for persistence.
func (v *CustomTourValidator) Validate(req *models.CreateCustomTourRequestRequest) (*models.CustomTourRequest, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, newMissingField("customer_name")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, newMissingField("customer_email")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, newMissingField("customer_phone")
	}
	if isMissing(req.NumberOfTravelers) {
		return nil, newMissingField("number_of_travelers")
	}
	if isMissing(req.DurationDays) {
		return nil, newMissingField("duration_days")
	}
	if strings.TrimSpace(req.BudgetLevel) == "" {
		return nil, newMissingField("budget_level")
	}
	if len(req.SelectedDestinations) == 0 {
		return nil, newMissingField("selected_destinations")
	}
	if isMissing(req.EstimatedCost) {
		return nil, newMissingField("estimated_cost")
	}

	if !IsValidEmail(strings.TrimSpace(req.CustomerEmail)) {
		return nil, newInvalidEmail("customer_email")
	}

	budgetLevel := models.BudgetLevel(req.BudgetLevel)
	if !budgetLevel.IsValid() {
		return nil, newInvalidFormat("budget_level",
			"Invalid budget level. Must be one of: low, medium, high, luxury")
	}

	var travelDate *time.Time
	if req.TravelDate != nil && strings.TrimSpace(*req.TravelDate) != "" {
		parsed, err := time.Parse(DateFormat, strings.TrimSpace(*req.TravelDate))
		if err != nil {
			return nil, newInvalidFormat("travel_date", "Invalid date format. Use YYYY-MM-DD")
		}
		if parsed.Before(truncateToDate(v.now().UTC())) {
			return nil, newPastDate("travel_date", "Travel date cannot be in the past")
		}
		travelDate = &parsed
	}

	travelers, err := CoerceInt(req.NumberOfTravelers)
	if err != nil {
		return nil, newInvalidFormat("number_of_travelers", "Invalid number_of_travelers: must be an integer")
	}
	durationDays, err := CoerceInt(req.DurationDays)
	if err != nil {
		return nil, newInvalidFormat("duration_days", "Invalid duration_days: must be an integer")
	}
	estimatedCost, err := CoerceFloat(req.EstimatedCost)
	if err != nil {
		return nil, newInvalidFormat("estimated_cost", "Invalid estimated_cost: must be a number")
	}

	if travelers < MinTravelers || travelers > MaxTravelers {
		return nil, newOutOfRange("number_of_travelers",
			fmt.Sprintf("Number of travelers must be between %d and %d", MinTravelers, MaxTravelers))
	}
	if durationDays < MinDurationDays || durationDays > MaxDurationDays {
		return nil, newOutOfRange("duration_days",
			fmt.Sprintf("Duration must be between %d and %d days", MinDurationDays, MaxDurationDays))
	}
	if estimatedCost < 0 {
		return nil, newOutOfRange("estimated_cost", "Estimated cost cannot be negative")
	}

	return &models.CustomTourRequest{
		CustomerName:         strings.TrimSpace(req.CustomerName),
		CustomerEmail:        strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:        strings.TrimSpace(req.CustomerPhone),
		TravelDate:           travelDate,
		NumberOfTravelers:    travelers,
		DurationDays:         durationDays,
		BudgetLevel:          budgetLevel,
		SelectedDestinations: models.StringArray(req.SelectedDestinations),
		DestinationNames:     models.StringArray(req.DestinationNames),
		EstimatedCost:        estimatedCost,
		SpecialRequests:      req.SpecialRequests,
		Status:               models.CustomTourStatusPending,
	}, nil
}
