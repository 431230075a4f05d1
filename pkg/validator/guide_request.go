package validator

import (
	"strings"
	"time"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// GuideRequestValidator checks raw guide contact/booking requests
type GuideRequestValidator struct {
	now func() time.Time
}

// NewGuideRequestValidator creates a guide request validator using the wall clock
func NewGuideRequestValidator() *GuideRequestValidator {
	return &GuideRequestValidator{now: time.Now}
}

// Validate checks required fields, email, request type and the optional
// preferred date. It returns the request ready for persistence.
func (v *GuideRequestValidator) Validate(req *models.CreateGuideRequestRequest) (*models.GuideRequest, error) {
	if req.GuideID == nil {
		return nil, newMissingField("guide_id")
	}
	if strings.TrimSpace(req.RequestType) == "" {
		return nil, newMissingField("request_type")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, newMissingField("customer_name")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, newMissingField("customer_email")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, newMissingField("message")
	}

	if !IsValidEmail(strings.TrimSpace(req.CustomerEmail)) {
		return nil, newInvalidEmail("customer_email")
	}

	requestType := models.GuideRequestType(req.RequestType)
	if !requestType.IsValid() {
		return nil, newInvalidFormat("request_type",
			"Invalid request type. Must be 'contact' or 'booking'")
	}

	var preferredDate *time.Time
	if req.PreferredDate != nil && strings.TrimSpace(*req.PreferredDate) != "" {
		parsed, err := time.Parse(DateFormat, strings.TrimSpace(*req.PreferredDate))
		if err != nil {
			return nil, newInvalidFormat("preferred_date", "Invalid date format. Use YYYY-MM-DD")
		}
		if parsed.Before(truncateToDate(v.now().UTC())) {
			return nil, newPastDate("preferred_date", "Preferred date cannot be in the past")
		}
		preferredDate = &parsed
	}

	return &models.GuideRequest{
		GuideID:       *req.GuideID,
		RequestType:   requestType,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: req.CustomerPhone,
		PreferredDate: preferredDate,
		Duration:      req.Duration,
		GroupSize:     req.GroupSize,
		TourType:      req.TourType,
		Message:       strings.TrimSpace(req.Message),
		Status:        models.GuideRequestStatusPending,
	}, nil
}
