package models

// PricingInsights explains how a suggested price was derived
type PricingInsights struct {
	PurchaseProbability float64 `json:"purchase_probability"`
	SeasonalMultiplier  float64 `json:"seasonal_multiplier"`
	DemandMultiplier    float64 `json:"demand_multiplier"`
	AIConfidence        float64 `json:"ai_confidence"`
	Personalized        bool    `json:"personalized"`
}

// PricingQuote is the response body for POST /api/ai-pricing
type PricingQuote struct {
	BasePrice        float64         `json:"base_price"`
	AISuggestedPrice float64         `json:"ai_suggested_price"`
	FinalPrice       float64         `json:"final_price"`
	PricePerPerson   float64         `json:"price_per_person"`
	PricingInsights  PricingInsights `json:"pricing_insights"`
	Savings          float64         `json:"savings"`
	Premium          float64         `json:"premium"`
}

// PricingRequest is the body for POST /api/ai-pricing
type PricingRequest struct {
	TourID     interface{} `json:"tour_id"`
	Guests     interface{} `json:"guests"`
	TravelDate *string     `json:"travel_date,omitempty"`
	UserID     *int        `json:"user_id,omitempty"`
}
