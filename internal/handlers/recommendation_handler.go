package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/middleware"
	"github.com/mathangi54/Travelling-System/internal/services"
)

// RecommendationHandler serves personalized tour recommendations
type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// Get returns the most-booked tours scored for the authenticated user
func (h *RecommendationHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Token is missing")
		return
	}

	recs, err := h.recommendations.ForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, recs)
}
