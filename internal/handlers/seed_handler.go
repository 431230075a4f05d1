package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/database"
)

// SeedHandler loads demo data into an empty database
type SeedHandler struct {
	seeds *database.SeedRepository
}

// NewSeedHandler creates a new SeedHandler
func NewSeedHandler(seeds *database.SeedRepository) *SeedHandler {
	return &SeedHandler{seeds: seeds}
}

// Seed populates tours, a demo admin account and sample bookings,
// unless tours already exist. Safe to call repeatedly.
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seeds.SeedToursIfEmpty()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !result.Seeded {
		respondMessage(c, http.StatusOK,
			"Database already contains tours, skipping seed",
			gin.H{"existing_tours": result.ExistingTours})
		return
	}
	respondMessage(c, http.StatusOK,
		"Database seeded successfully",
		gin.H{"tours_added": result.ToursAdded})
}

// ReseedTours replaces the tour catalogue with the Sri Lanka fixtures
func (h *SeedHandler) ReseedTours(c *gin.Context) {
	count, err := h.seeds.ReseedTours()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK,
		"Sri Lankan tours seeded successfully",
		gin.H{"tours_added": count})
}

// ReseedGuides replaces the guide directory with the fixture guides
func (h *SeedHandler) ReseedGuides(c *gin.Context) {
	count, err := h.seeds.ReseedGuides()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK,
		"Guides seeded successfully",
		gin.H{"guides_added": count})
}
