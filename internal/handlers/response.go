package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/services"
	"github.com/mathangi54/Travelling-System/pkg/validator"
)

// respondData writes the success envelope with a data payload
func respondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

// respondList writes the success envelope with a list payload and its count
func respondList(c *gin.Context, key string, items interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{"status": "success", key: items, "count": count})
}

// respondMessage writes the success envelope with a human-readable message
func respondMessage(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{"status": "success", "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

// respondError writes the error envelope
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// respondServiceError maps known domain errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	var verr *validator.Error
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrAdvisorDisabled):
		respondError(c, http.StatusServiceUnavailable, "AI recommendations are not available")
	case errors.Is(err, database.ErrTourNotFound):
		respondError(c, http.StatusNotFound, "Tour not found")
	case errors.Is(err, database.ErrBookingNotFound):
		respondError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, database.ErrGuideNotFound):
		respondError(c, http.StatusNotFound, "Guide not found")
	case errors.Is(err, database.ErrGuideRequestNotFound):
		respondError(c, http.StatusNotFound, "Guide request not found")
	case errors.Is(err, database.ErrCustomTourRequestNotFound):
		respondError(c, http.StatusNotFound, "Custom tour request not found")
	case errors.Is(err, database.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, database.ErrDuplicateUser):
		respondError(c, http.StatusConflict, "An account with this email or username already exists")
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
