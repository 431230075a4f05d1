package advisor

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/config"
)

// neutralProbability is reported when the advisor cannot score a profile
const neutralProbability = 0.5

// Suggestion is the advisor's pricing opinion for one request. The
// price is advisory only; callers persist whatever the customer agreed
// to pay.
type Suggestion struct {
	Price              float64
	Probability        float64
	SeasonalMultiplier float64
	DemandMultiplier   float64
}

// Advisor scores traveler profiles against the purchase model and
// turns the result into price adjustments. A disabled advisor is a
// valid value that always falls back to the base price.
type Advisor struct {
	enabled bool
	mode    string
	model   *Artifact
	logger  *logrus.Logger
}

// New builds an advisor from configuration. A missing or malformed
// artifact disables the advisor rather than failing startup.
func New(cfg config.PricingConfig, logger *logrus.Logger) *Advisor {
	a := &Advisor{mode: cfg.Mode, logger: logger}
	if !cfg.Enabled {
		logger.Info("pricing advisor disabled by configuration")
		return a
	}

	model, err := LoadArtifact(cfg.ArtifactPath)
	if err != nil {
		logger.WithError(err).WithField("artifact", cfg.ArtifactPath).
			Warn("pricing advisor artifact unavailable, falling back to base prices")
		return a
	}

	a.enabled = true
	a.model = model
	logger.WithFields(logrus.Fields{
		"mode":     cfg.Mode,
		"features": len(model.Features),
	}).Info("pricing advisor ready")
	return a
}

// Enabled reports whether the advisor is scoring profiles
func (a *Advisor) Enabled() bool {
	return a.enabled
}

// Mode returns the configured adjustment mode
func (a *Advisor) Mode() string {
	return a.mode
}

// PurchaseProbability scores the profile with the purchase model.
// Disabled advisors report the neutral probability.
func (a *Advisor) PurchaseProbability(p Profile) float64 {
	if !a.enabled || a.model == nil {
		return neutralProbability
	}
	return a.model.Score(p.featureValues())
}

// SuggestPrice computes a basic personalized price: probability and
// income adjustments only, clamped to [0.6, 2.0] of the base price.
func (a *Advisor) SuggestPrice(basePrice float64, p Profile) Suggestion {
	if !a.enabled {
		return Suggestion{
			Price:              basePrice,
			Probability:        neutralProbability,
			SeasonalMultiplier: 1.0,
			DemandMultiplier:   1.0,
		}
	}

	prob := a.PurchaseProbability(p)
	price := applyProfileMultipliers(basePrice, prob, p.MonthlyIncome)
	price = clamp(price, basePrice*0.6, basePrice*2.0)

	return Suggestion{
		Price:              round2(price),
		Probability:        prob,
		SeasonalMultiplier: 1.0,
		DemandMultiplier:   1.0,
	}
}

// SuggestPriceSeasonal layers Sri Lankan season and date demand onto
// the basic adjustment, with a wider clamp of [0.7, 2.2] of base.
// confirmedDemand is the number of confirmed bookings sharing the
// travel date.
func (a *Advisor) SuggestPriceSeasonal(basePrice float64, p Profile, travelDate time.Time, confirmedDemand int) Suggestion {
	if !a.enabled {
		return Suggestion{
			Price:              basePrice,
			Probability:        neutralProbability,
			SeasonalMultiplier: 1.0,
			DemandMultiplier:   1.0,
		}
	}

	prob := a.PurchaseProbability(p)
	seasonal := seasonalMultiplier(travelDate.Month())
	demand := demandMultiplier(confirmedDemand)

	price := applyProfileMultipliers(basePrice, prob, p.MonthlyIncome) * seasonal * demand
	price = clamp(price, basePrice*0.7, basePrice*2.2)

	return Suggestion{
		Price:              round2(price),
		Probability:        prob,
		SeasonalMultiplier: seasonal,
		DemandMultiplier:   demand,
	}
}

// applyProfileMultipliers adjusts the base price for purchase intent
// and income bracket
func applyProfileMultipliers(basePrice, probability, income float64) float64 {
	price := basePrice
	switch {
	case probability > 0.7:
		price *= 1.2
	case probability < 0.3:
		price *= 0.8
	}

	switch {
	case income > 100000:
		price *= 1.1
	case income < 30000:
		price *= 0.9
	}
	return price
}

// seasonalMultiplier follows the Sri Lankan travel calendar: peak
// season December through April, monsoon in July and August.
func seasonalMultiplier(month time.Month) float64 {
	switch month {
	case time.December, time.January, time.February, time.March, time.April:
		return 1.15
	case time.July, time.August:
		return 0.85
	default:
		return 0.95
	}
}

func demandMultiplier(confirmed int) float64 {
	switch {
	case confirmed > 10:
		return 1.25
	case confirmed > 5:
		return 1.1
	default:
		return 1.0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
