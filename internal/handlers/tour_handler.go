package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/database"
)

// TourHandler serves the tour catalogue
type TourHandler struct {
	tours *database.TourRepository
}

// NewTourHandler creates a new TourHandler
func NewTourHandler(tours *database.TourRepository) *TourHandler {
	return &TourHandler{tours: tours}
}

// List returns all tours, newest first
func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.tours.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, "tours", tours, len(tours))
}

// Get returns a single tour
func (h *TourHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid tour id")
		return
	}

	tour, err := h.tours.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, tour)
}
