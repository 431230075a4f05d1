package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/mathangi54/Travelling-System/internal/models"
)

const (
	// DateFormat is the wire format for all date fields
	DateFormat = "2006-01-02"

	// MinGuests and MaxGuests bound the party size of a single booking
	MinGuests = 1
	MaxGuests = 50
)

// BookingValidator checks and normalizes raw booking requests
type BookingValidator struct {
	now func() time.Time
}

// NewBookingValidator creates a booking validator using the wall clock
func NewBookingValidator() *BookingValidator {
	return &BookingValidator{now: time.Now}
}

// requiredBookingFields is checked in order; the first missing field wins
var requiredBookingFields = []string{
	"tour_id",
	"travel_date",
	"guests",
	"total_price",
	"customer_name",
	"customer_email",
	"customer_phone",
	"package_type",
}

// Validate runs the full check sequence on a raw booking request:
// presence, type coercion, email format, ranges, then date sanity.
// The first failure short-circuits. On success it returns the
// normalized booking ready for persistence.
func (v *BookingValidator) Validate(req *models.CreateBookingRequest) (*models.NewBooking, error) {
	present := map[string]bool{
		"tour_id":        !isMissing(req.TourID),
		"travel_date":    !isMissing(req.TravelDate),
		"guests":         !isMissing(req.Guests),
		"total_price":    !isMissing(req.TotalPrice),
		"customer_name":  strings.TrimSpace(req.CustomerName) != "",
		"customer_email": strings.TrimSpace(req.CustomerEmail) != "",
		"customer_phone": strings.TrimSpace(req.CustomerPhone) != "",
		"package_type":   strings.TrimSpace(req.PackageType) != "",
	}
	for _, field := range requiredBookingFields {
		if !present[field] {
			return nil, newMissingField(field)
		}
	}

	tourID, err := CoerceInt(req.TourID)
	if err != nil {
		return nil, newInvalidFormat("tour_id", "Invalid tour_id: must be an integer")
	}
	guests, err := CoerceInt(req.Guests)
	if err != nil {
		return nil, newInvalidFormat("guests", "Invalid guests: must be an integer")
	}
	totalPrice, err := CoerceFloat(req.TotalPrice)
	if err != nil {
		return nil, newInvalidFormat("total_price", "Invalid total_price: must be a number")
	}
	rawDate, err := CoerceString(req.TravelDate)
	if err != nil {
		return nil, newInvalidFormat("travel_date", "Invalid date format. Use YYYY-MM-DD")
	}
	travelDate, err := time.Parse(DateFormat, rawDate)
	if err != nil {
		return nil, newInvalidFormat("travel_date", "Invalid date format. Use YYYY-MM-DD")
	}

	if !IsValidEmail(strings.TrimSpace(req.CustomerEmail)) {
		return nil, newInvalidEmail("customer_email")
	}

	if guests < MinGuests || guests > MaxGuests {
		return nil, newOutOfRange("guests",
			fmt.Sprintf("Number of guests must be between %d and %d", MinGuests, MaxGuests))
	}
	if totalPrice < 0 {
		return nil, newOutOfRange("total_price", "Total price cannot be negative")
	}

	// Parsed dates carry UTC midnight, so compare against the UTC date
	today := truncateToDate(v.now().UTC())
	if travelDate.Before(today) {
		return nil, newPastDate("travel_date", "Travel date cannot be in the past")
	}

	nb := &models.NewBooking{
		TourID:              tourID,
		TravelDate:          travelDate,
		Guests:              guests,
		TotalPrice:          totalPrice,
		CustomerName:        strings.TrimSpace(req.CustomerName),
		CustomerEmail:       strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:       strings.TrimSpace(req.CustomerPhone),
		PackageType:         strings.TrimSpace(req.PackageType),
		SpecialRequests:     req.SpecialRequests,
		PreferredStarRating: 3,
		NumberOfChildren:    0,
	}
	if req.PreferredStarRating != nil {
		nb.PreferredStarRating = *req.PreferredStarRating
	}
	if req.NumberOfChildren != nil {
		nb.NumberOfChildren = *req.NumberOfChildren
	}
	return nb, nil
}

func isMissing(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
