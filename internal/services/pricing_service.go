package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/advisor"
	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/pkg/validator"
)

// PricingService produces AI pricing previews for the storefront
type PricingService struct {
	tours    *database.TourRepository
	users    *database.UserRepository
	bookings *database.BookingRepository
	advisor  *advisor.Advisor
	logger   *logrus.Logger
}

// NewPricingService creates a new PricingService
func NewPricingService(
	tours *database.TourRepository,
	users *database.UserRepository,
	bookings *database.BookingRepository,
	priceAdvisor *advisor.Advisor,
	logger *logrus.Logger,
) *PricingService {
	return &PricingService{
		tours:    tours,
		users:    users,
		bookings: bookings,
		advisor:  priceAdvisor,
		logger:   logger,
	}
}

// Quote prices a prospective booking: personalized adjustment first,
// then season and demand when a travel date is given. The caller's
// identity is optional and only sharpens the profile.
func (s *PricingService) Quote(req *models.PricingRequest, userID *int) (*models.PricingQuote, error) {
	tourID, err := validator.CoerceInt(req.TourID)
	if err != nil || tourID <= 0 {
		return nil, &validator.Error{
			Kind:    validator.KindMissingField,
			Field:   "tour_id",
			Message: "Missing required field: tour_id",
		}
	}

	guests := 2
	if req.Guests != nil {
		if g, err := validator.CoerceInt(req.Guests); err == nil && g > 0 {
			guests = g
		}
	}

	tour, err := s.tours.GetByID(tourID)
	if err != nil {
		return nil, err
	}

	var user *models.User
	if userID != nil {
		user, err = s.users.GetByID(*userID)
		if err != nil && !errors.Is(err, database.ErrUserNotFound) {
			return nil, err
		}
	}

	profile := advisor.BuildProfile(user, guests)
	probability := s.advisor.PurchaseProbability(profile)
	personalized := s.advisor.Enabled() && user != nil

	base := s.advisor.SuggestPrice(tour.Price, profile)

	final := base
	if req.TravelDate != nil && strings.TrimSpace(*req.TravelDate) != "" {
		travelDate, err := time.Parse(validator.DateFormat, strings.TrimSpace(*req.TravelDate))
		if err != nil {
			return nil, &validator.Error{
				Kind:    validator.KindInvalidFormat,
				Field:   "travel_date",
				Message: "Invalid date format. Use YYYY-MM-DD",
			}
		}

		demand, err := s.bookings.CountConfirmedForDate(travelDate)
		if err != nil {
			s.logger.WithError(err).Warn("demand lookup failed, pricing without demand signal")
			demand = 0
		}
		final = s.advisor.SuggestPriceSeasonal(tour.Price, profile, travelDate, demand)
	}

	return &models.PricingQuote{
		BasePrice:        tour.Price,
		AISuggestedPrice: base.Price,
		FinalPrice:       final.Price,
		PricePerPerson:   round2(final.Price / float64(guests)),
		PricingInsights: models.PricingInsights{
			PurchaseProbability: round3(probability),
			SeasonalMultiplier:  final.SeasonalMultiplier,
			DemandMultiplier:    final.DemandMultiplier,
			AIConfidence:        round3(probability),
			Personalized:        personalized,
		},
		Savings: round2(math.Max(0, tour.Price-final.Price)),
		Premium: round2(math.Max(0, final.Price-tour.Price)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
