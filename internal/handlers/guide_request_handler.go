package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/pkg/validator"
)

// GuideRequestHandler handles customer enquiries directed at guides
type GuideRequestHandler struct {
	requests  *database.GuideRequestRepository
	guides    *database.GuideRepository
	validator *validator.GuideRequestValidator
}

// NewGuideRequestHandler creates a new GuideRequestHandler
func NewGuideRequestHandler(requests *database.GuideRequestRepository, guides *database.GuideRepository) *GuideRequestHandler {
	return &GuideRequestHandler{
		requests:  requests,
		guides:    guides,
		validator: validator.NewGuideRequestValidator(),
	}
}

// Create records a contact or booking request for a guide
func (h *GuideRequestHandler) Create(c *gin.Context) {
	var req models.CreateGuideRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	gr, err := h.validator.Validate(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	exists, err := h.guides.Exists(gr.GuideID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !exists {
		respondError(c, http.StatusNotFound, "Guide not found")
		return
	}

	created, err := h.requests.Create(gr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated,
		"Guide request submitted successfully! The guide will contact you within 24 hours.",
		gin.H{"data": created})
}

// List returns guide requests, optionally filtered by status and guide_id
func (h *GuideRequestHandler) List(c *gin.Context) {
	var filter models.GuideRequestFilter

	if raw := c.Query("status"); raw != "" {
		status := models.GuideRequestStatus(raw)
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("guide_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid guide_id filter")
			return
		}
		filter.GuideID = &id
	}

	requests, err := h.requests.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, "guide_requests", requests, len(requests))
}

// UpdateStatus moves a guide request through its workflow
func (h *GuideRequestHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid guide request id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := models.GuideRequestStatus(req.Status)
	if !status.IsValid() {
		respondError(c, http.StatusBadRequest, "Invalid status. Must be one of: pending, contacted, confirmed, cancelled")
		return
	}

	if err := h.requests.UpdateStatus(id, status); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Guide request status updated successfully", nil)
}
