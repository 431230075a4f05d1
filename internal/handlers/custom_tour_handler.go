package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/middleware"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/pkg/validator"
)

// CustomTourHandler handles bespoke itinerary requests
type CustomTourHandler struct {
	requests  *database.CustomTourRepository
	validator *validator.CustomTourValidator
}

// NewCustomTourHandler creates a new CustomTourHandler
func NewCustomTourHandler(requests *database.CustomTourRepository) *CustomTourHandler {
	return &CustomTourHandler{
		requests:  requests,
		validator: validator.NewCustomTourValidator(),
	}
}

// Create records a custom tour request. A valid token attaches the
// request to the account; anonymous requests are accepted as well.
func (h *CustomTourHandler) Create(c *gin.Context) {
	var req models.CreateCustomTourRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctr, err := h.validator.Validate(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if id, ok := middleware.UserID(c); ok {
		ctr.UserID = &id
	}

	if err := h.requests.Create(ctr); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated,
		"Custom tour request submitted successfully! Our travel experts will contact you within 24 hours to discuss your personalized Sri Lankan adventure.",
		gin.H{"data": ctr})
}

// List returns all custom tour requests, newest first
func (h *CustomTourHandler) List(c *gin.Context) {
	requests, err := h.requests.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, "custom_tour_requests", requests, len(requests))
}

// UpdateStatus moves a custom tour request through its workflow
func (h *CustomTourHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid custom tour request id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := models.CustomTourStatus(req.Status)
	if !status.IsValid() {
		respondError(c, http.StatusBadRequest, "Invalid status. Must be one of: pending, reviewed, quoted, confirmed, cancelled")
		return
	}

	if err := h.requests.UpdateStatus(id, status); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Custom tour request status updated successfully", nil)
}
