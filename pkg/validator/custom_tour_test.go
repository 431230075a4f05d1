package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/Travelling-System/internal/models"
)

func customTourRequest() *models.CreateCustomTourRequestRequest {
	return &models.CreateCustomTourRequestRequest{
		CustomerName:         "Amaya Jayawardena",
		CustomerEmail:        "amaya@example.com",
		CustomerPhone:        "0771234567",
		NumberOfTravelers:    float64(4),
		DurationDays:         float64(7),
		BudgetLevel:          "medium",
		SelectedDestinations: []string{"sigiriya", "ella", "mirissa"},
		EstimatedCost:        float64(95000),
	}
}

func TestCustomTourValidatorValid(t *testing.T) {
	v := NewCustomTourValidator()

	ctr, err := v.Validate(customTourRequest())
	require.NoError(t, err)
	assert.Equal(t, 4, ctr.NumberOfTravelers)
	assert.Equal(t, 7, ctr.DurationDays)
	assert.Equal(t, models.BudgetLevelMedium, ctr.BudgetLevel)
	assert.Equal(t, models.CustomTourStatusPending, ctr.Status)
	assert.Len(t, ctr.SelectedDestinations, 3)
}

func TestCustomTourValidatorBudgetLevel(t *testing.T) {
	v := NewCustomTourValidator()

	req := customTourRequest()
	req.BudgetLevel = "extravagant"
	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Invalid budget level. Must be one of: low, medium, high, luxury", err.Error())
}

func TestCustomTourValidatorRanges(t *testing.T) {
	v := NewCustomTourValidator()

	req := customTourRequest()
	req.NumberOfTravelers = float64(51)
	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, KindOutOfRange, err.(*Error).Kind)

	req = customTourRequest()
	req.DurationDays = float64(31)
	_, err = v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, "Duration must be between 1 and 30 days", err.Error())
}

func TestCustomTourValidatorPastTravelDate(t *testing.T) {
	v := &CustomTourValidator{now: func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}}

	past := "2026-08-01"
	req := customTourRequest()
	req.TravelDate = &past
	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Equal(t, KindPastDate, err.(*Error).Kind)
}

func TestValidateRegistration(t *testing.T) {
	err := ValidateRegistration(&models.RegisterRequest{
		Username: "kasun",
		Email:    "kasun@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)

	err = ValidateRegistration(&models.RegisterRequest{
		Username: "kasun",
		Email:    "kasun@example.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters long", err.Error())

	err = ValidateRegistration(&models.RegisterRequest{
		Username: "kasun",
		Email:    "not-an-email",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.Equal(t, KindInvalidEmail, err.(*Error).Kind)
}
