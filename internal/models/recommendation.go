package models

// RecommendedTour is a tour scored for one traveller: popularity from
// booking counts, pricing fields from the advisor.
type RecommendedTour struct {
	Tour
	BookingCount         int     `json:"booking_count" db:"booking_count"`
	AIScore              float64 `json:"ai_score"`
	AISuggestedPrice     float64 `json:"ai_suggested_price"`
	RecommendationReason string  `json:"recommendation_reason"`
}

// RecommendationInsights explains how the recommendation set was built
type RecommendationInsights struct {
	PurchaseProbability   float64 `json:"purchase_probability"`
	ModelConfidence       float64 `json:"model_confidence"`
	PersonalizationActive bool    `json:"personalization_active"`
}

// Recommendations is the response body for GET /api/ai-recommendations
type Recommendations struct {
	Tours      []RecommendedTour      `json:"tours"`
	AIInsights RecommendationInsights `json:"ai_insights"`
}
