package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/middleware"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/internal/services"
)

// PricingHandler exposes the AI pricing advisor
type PricingHandler struct {
	pricing *services.PricingService
	demand  *services.DemandService
	status  func() (enabled bool, mode string)
}

// NewPricingHandler creates a new PricingHandler. The status callback
// reports the advisor's availability for the status endpoint.
func NewPricingHandler(pricing *services.PricingService, demand *services.DemandService, status func() (bool, string)) *PricingHandler {
	return &PricingHandler{pricing: pricing, demand: demand, status: status}
}

// Quote prices a prospective booking. The body may name a user_id
// explicitly; otherwise a valid token identifies the traveller.
func (h *PricingHandler) Quote(c *gin.Context) {
	var req models.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := req.UserID
	if userID == nil {
		if id, ok := middleware.UserID(c); ok {
			userID = &id
		}
	}

	quote, err := h.pricing.Quote(&req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, quote)
}

// Status reports whether the advisor is available and the latest
// demand snapshot.
func (h *PricingHandler) Status(c *gin.Context) {
	enabled, mode := h.status()
	respondData(c, http.StatusOK, gin.H{
		"ai_enabled": enabled,
		"mode":       mode,
		"demand":     h.demand.Snapshot(),
	})
}

// RefreshDemand recomputes the demand snapshot immediately
func (h *PricingHandler) RefreshDemand(c *gin.Context) {
	if err := h.demand.Refresh(); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, h.demand.Snapshot())
}
