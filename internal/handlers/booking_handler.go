package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/middleware"
	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/internal/services"
)

// BookingHandler handles booking operations
type BookingHandler struct {
	bookings *services.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create records a booking. Authentication is optional; a valid token
// attaches the booking to the account, anything else books anonymously.
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var userID *int
	if id, ok := middleware.UserID(c); ok {
		userID = &id
	}

	booking, err := h.bookings.Create(&req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, booking)
}

// List returns bookings, optionally filtered by user_id and status
func (h *BookingHandler) List(c *gin.Context) {
	var filter models.BookingFilter

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid user_id filter")
			return
		}
		filter.UserID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := models.BookingStatus(raw)
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Status = &status
	}

	bookings, err := h.bookings.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, "bookings", bookings, len(bookings))
}

// Get returns a single booking
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.bookings.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, booking)
}

// UpdateStatus moves a booking to a new status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookings.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, booking)
}

// Delete removes a booking permanently
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	if err := h.bookings.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Booking deleted successfully", nil)
}
