package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/advisor"
	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/pkg/validator"
)

// BookingService owns the booking lifecycle
type BookingService struct {
	bookings    *database.BookingRepository
	tours       *database.TourRepository
	users       *database.UserRepository
	advisor     *advisor.Advisor
	validator   *validator.BookingValidator
	logger      *logrus.Logger
	autoConfirm bool
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookings *database.BookingRepository,
	tours *database.TourRepository,
	users *database.UserRepository,
	priceAdvisor *advisor.Advisor,
	logger *logrus.Logger,
	autoConfirm bool,
) *BookingService {
	return &BookingService{
		bookings:    bookings,
		tours:       tours,
		users:       users,
		advisor:     priceAdvisor,
		validator:   validator.NewBookingValidator(),
		logger:      logger,
		autoConfirm: autoConfirm,
	}
}

// Create validates and persists a booking. The advisor's suggestion is
// recorded alongside the booking but never changes the agreed price.
// A stale identity degrades to an anonymous booking rather than failing.
func (s *BookingService) Create(req *models.CreateBookingRequest, userID *int) (*models.Booking, error) {
	nb, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	tour, err := s.tours.GetByID(nb.TourID)
	if err != nil {
		return nil, err
	}

	var user *models.User
	if userID != nil {
		user, err = s.users.GetByID(*userID)
		if err != nil {
			if !errors.Is(err, database.ErrUserNotFound) {
				return nil, err
			}
			s.logger.WithField("user_id", *userID).
				Warn("booking identity no longer exists, recording as anonymous")
			userID = nil
		}
	}

	aiSuggestedPrice := s.suggestPrice(tour.Price, user, nb)

	status := models.BookingStatusPending
	if s.autoConfirm {
		status = models.BookingStatusConfirmed
	}

	booking, err := s.bookings.Create(nb, userID, aiSuggestedPrice, status)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"tour_id":    booking.TourID,
		"guests":     booking.Guests,
		"status":     booking.Status,
	}).Info("booking created")
	return booking, nil
}

// suggestPrice runs the pricing advisor for a new booking. Any failure
// along the way degrades to no suggestion; the booking itself never
// depends on the advisor.
func (s *BookingService) suggestPrice(basePrice float64, user *models.User, nb *models.NewBooking) *float64 {
	if !s.advisor.Enabled() {
		return nil
	}

	profile := advisor.BuildProfile(user, nb.Guests)
	profile.Children = nb.NumberOfChildren
	profile.PreferredStarRating = nb.PreferredStarRating

	var suggestion advisor.Suggestion
	if s.advisor.Mode() == "seasonal" {
		demand, err := s.bookings.CountConfirmedForDate(nb.TravelDate)
		if err != nil {
			s.logger.WithError(err).Warn("demand lookup failed, pricing without demand signal")
			demand = 0
		}
		suggestion = s.advisor.SuggestPriceSeasonal(basePrice, profile, nb.TravelDate, demand)
	} else {
		suggestion = s.advisor.SuggestPrice(basePrice, profile)
	}
	return &suggestion.Price
}

// List returns bookings matching the filter
func (s *BookingService) List(filter models.BookingFilter) ([]models.Booking, error) {
	return s.bookings.List(filter)
}

// Get returns a single booking
func (s *BookingService) Get(id int) (*models.Booking, error) {
	return s.bookings.GetByID(id)
}

// UpdateStatus moves a booking to the given status. Any known status is
// accepted; a transition that runs against the usual forward flow is
// logged but not rejected.
func (s *BookingService) UpdateStatus(id int, rawStatus string) (*models.Booking, error) {
	status := models.BookingStatus(rawStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q must be one of pending, confirmed, cancelled", ErrInvalidStatus, rawStatus)
	}

	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}

	if booking.Status != status && !booking.Status.CanTransitionTo(status) {
		s.logger.WithFields(logrus.Fields{
			"booking_id": id,
			"from":       booking.Status,
			"to":         status,
		}).Warn("booking status moved against the usual flow")
	}

	if err := s.bookings.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

// Delete removes a booking permanently
func (s *BookingService) Delete(id int) error {
	if err := s.bookings.Delete(id); err != nil {
		return err
	}
	s.logger.WithField("booking_id", id).Info("booking deleted")
	return nil
}
