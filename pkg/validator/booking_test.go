package validator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/Travelling-System/internal/models"
)

func fixedClockValidator() *BookingValidator {
	return &BookingValidator{now: func() time.Time {
		return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	}}
}

func validRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		TourID:        float64(3),
		TravelDate:    "2026-09-15",
		Guests:        float64(4),
		TotalPrice:    float64(18000),
		CustomerName:  "Kasun Silva",
		CustomerEmail: "kasun@example.com",
		CustomerPhone: "+94 77 123 4567",
		PackageType:   "standard",
	}
}

func TestBookingValidatorValid(t *testing.T) {
	v := fixedClockValidator()

	nb, err := v.Validate(validRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, nb.TourID)
	assert.Equal(t, 4, nb.Guests)
	assert.Equal(t, 18000.0, nb.TotalPrice)
	assert.Equal(t, "2026-09-15", nb.TravelDate.Format(DateFormat))
	assert.Equal(t, 3, nb.PreferredStarRating)
	assert.Equal(t, 0, nb.NumberOfChildren)
}

func TestBookingValidatorMissingFields(t *testing.T) {
	v := fixedClockValidator()

	req := validRequest()
	req.TravelDate = nil
	_, err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindMissingField, verr.Kind)
	assert.Equal(t, "Missing required field: travel_date", verr.Message)

	req = validRequest()
	req.CustomerName = "   "
	_, err = v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: customer_name", err.Error())
}

func TestBookingValidatorMissingFieldOrder(t *testing.T) {
	v := fixedClockValidator()

	// With several fields missing, the first one in declaration order is reported
	req := validRequest()
	req.TourID = nil
	req.Guests = nil
	req.CustomerEmail = ""

	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: tour_id", err.Error())
}

func TestBookingValidatorCoercion(t *testing.T) {
	v := fixedClockValidator()

	// Numeric strings coerce
	req := validRequest()
	req.TourID = "7"
	req.Guests = "2"
	req.TotalPrice = "4500.50"
	nb, err := v.Validate(req)
	require.NoError(t, err)
	assert.Equal(t, 7, nb.TourID)
	assert.Equal(t, 2, nb.Guests)
	assert.Equal(t, 4500.50, nb.TotalPrice)

	// Garbage does not
	req = validRequest()
	req.Guests = "a few"
	_, err = v.Validate(req)
	require.Error(t, err)
	verr := err.(*Error)
	assert.Equal(t, KindInvalidFormat, verr.Kind)
	assert.Equal(t, "guests", verr.Field)
}

func TestBookingValidatorRejectsNonFiniteTotals(t *testing.T) {
	v := fixedClockValidator()

	for _, raw := range []interface{}{"NaN", "+Inf", "-Inf", math.NaN(), math.Inf(1)} {
		req := validRequest()
		req.TotalPrice = raw
		_, err := v.Validate(req)
		require.Error(t, err, "total_price %v", raw)
		verr := err.(*Error)
		assert.Equal(t, KindInvalidFormat, verr.Kind)
		assert.Equal(t, "total_price", verr.Field)
	}
}

func TestBookingValidatorBadDate(t *testing.T) {
	v := fixedClockValidator()

	req := validRequest()
	req.TravelDate = "15-09-2026"
	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", err.Error())
}

func TestBookingValidatorEmail(t *testing.T) {
	v := fixedClockValidator()

	for _, bad := range []string{"notanemail", "two@@signs.com", "missing@tld", "spaces in@mail.com"} {
		req := validRequest()
		req.CustomerEmail = bad
		_, err := v.Validate(req)
		require.Error(t, err, "email %q should be rejected", bad)
		assert.Equal(t, KindInvalidEmail, err.(*Error).Kind)
	}
}

func TestBookingValidatorRanges(t *testing.T) {
	v := fixedClockValidator()

	req := validRequest()
	req.Guests = float64(0)
	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Number of guests must be between 1 and 50", err.Error())

	req = validRequest()
	req.Guests = float64(51)
	_, err = v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, KindOutOfRange, err.(*Error).Kind)

	req = validRequest()
	req.TotalPrice = float64(-1)
	_, err = v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Total price cannot be negative", err.Error())
}

func TestBookingValidatorPastDate(t *testing.T) {
	v := fixedClockValidator()

	req := validRequest()
	req.TravelDate = "2026-08-29"
	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, KindPastDate, err.(*Error).Kind)

	// Today is allowed
	req = validRequest()
	req.TravelDate = "2026-08-30"
	_, err = v.Validate(req)
	assert.NoError(t, err)
}

func TestBookingValidatorTrimsAndDefaults(t *testing.T) {
	v := fixedClockValidator()

	stars := 5
	children := 2
	req := validRequest()
	req.CustomerName = "  Kasun Silva  "
	req.PreferredStarRating = &stars
	req.NumberOfChildren = &children

	nb, err := v.Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "Kasun Silva", nb.CustomerName)
	assert.Equal(t, 5, nb.PreferredStarRating)
	assert.Equal(t, 2, nb.NumberOfChildren)
}
