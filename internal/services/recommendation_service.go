package services

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/advisor"
	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/models"
)

// recommendationLimit caps how many tours a recommendation set carries
const recommendationLimit = 6

// RecommendationService ranks tours for a traveller: popularity from
// booking counts, then the advisor's view of fit and price.
type RecommendationService struct {
	tours   *database.TourRepository
	users   *database.UserRepository
	advisor *advisor.Advisor
	logger  *logrus.Logger
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(
	tours *database.TourRepository,
	users *database.UserRepository,
	priceAdvisor *advisor.Advisor,
	logger *logrus.Logger,
) *RecommendationService {
	return &RecommendationService{
		tours:   tours,
		users:   users,
		advisor: priceAdvisor,
		logger:  logger,
	}
}

// ForUser returns the most-booked tours scored against the user's
// profile. The score starts at the purchase probability and shifts
// with the advisor's price position: a suggested discount lifts a
// tour, premium pricing lowers it.
func (s *RecommendationService) ForUser(userID int) (*models.Recommendations, error) {
	if !s.advisor.Enabled() {
		return nil, ErrAdvisorDisabled
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	tours, err := s.tours.ListPopular(recommendationLimit)
	if err != nil {
		return nil, err
	}

	profile := advisor.BuildProfile(user, 0)
	probability := s.advisor.PurchaseProbability(profile)

	for i := range tours {
		suggestion := s.advisor.SuggestPrice(tours[i].Price, profile)
		score := probability
		reason := "Popular with other travellers"

		if tours[i].Price > 0 {
			switch ratio := suggestion.Price / tours[i].Price; {
			case ratio < 0.9:
				score += 0.1
				reason = "Discounted for your profile"
			case ratio > 1.1:
				score -= 0.05
				reason = "Premium match for your profile"
			}
		}

		tours[i].AIScore = round3(score)
		tours[i].AISuggestedPrice = suggestion.Price
		tours[i].RecommendationReason = reason
	}

	sort.SliceStable(tours, func(i, j int) bool {
		return tours[i].AIScore > tours[j].AIScore
	})

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"tours":   len(tours),
	}).Debug("recommendations built")

	return &models.Recommendations{
		Tours: tours,
		AIInsights: models.RecommendationInsights{
			PurchaseProbability:   round3(probability),
			ModelConfidence:       round3(probability),
			PersonalizationActive: true,
		},
	}, nil
}
