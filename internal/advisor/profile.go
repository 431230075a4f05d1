package advisor

import (
	"github.com/mathangi54/Travelling-System/internal/models"
)

// Default profile values used when a traveler attribute is unknown
const (
	defaultAge          = 35
	defaultCityTier     = 2
	defaultIncome       = 50000
	defaultTrips        = 1
	defaultSatisfaction = 4
	defaultGuests       = 2
)

// Profile captures the traveler attributes the purchase model scores.
// Every field has a usable default, so scoring never depends on a
// complete user record.
type Profile struct {
	Age                 int
	CityTier            int
	MonthlyIncome       float64
	OwnsCar             bool
	HasPassport         bool
	NumberOfTrips       int
	Satisfaction        int
	Guests              int
	Children            int
	PreferredStarRating int
}

// BuildProfile assembles a scoring profile from an optional user record.
// Missing attributes fall back to the defaults above; guests <= 0 means
// the caller did not know the party size.
func BuildProfile(user *models.User, guests int) Profile {
	p := Profile{
		Age:                 defaultAge,
		CityTier:            defaultCityTier,
		MonthlyIncome:       defaultIncome,
		NumberOfTrips:       defaultTrips,
		Satisfaction:        defaultSatisfaction,
		Guests:              defaultGuests,
		PreferredStarRating: 3,
	}
	if guests > 0 {
		p.Guests = guests
	}
	if user == nil {
		return p
	}

	if user.Age != nil {
		p.Age = *user.Age
	}
	if user.CityTier != nil {
		p.CityTier = *user.CityTier
	}
	if user.MonthlyIncome != nil {
		p.MonthlyIncome = *user.MonthlyIncome
	}
	if user.OwnsCar != nil {
		p.OwnsCar = *user.OwnsCar
	}
	if user.HasPassport != nil {
		p.HasPassport = *user.HasPassport
	}
	if user.NumberOfTrips != nil {
		p.NumberOfTrips = *user.NumberOfTrips
	}
	return p
}

// featureValues exposes the profile under the names the artifact uses
func (p Profile) featureValues() map[string]float64 {
	return map[string]float64{
		"age":                   float64(p.Age),
		"city_tier":             float64(p.CityTier),
		"monthly_income":        p.MonthlyIncome,
		"guests":                float64(p.Guests),
		"children":              float64(p.Children),
		"owns_car":              boolToFloat(p.OwnsCar),
		"has_passport":          boolToFloat(p.HasPassport),
		"number_of_trips":       float64(p.NumberOfTrips),
		"satisfaction_score":    float64(p.Satisfaction),
		"preferred_star_rating": float64(p.PreferredStarRating),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
