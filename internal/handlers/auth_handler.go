package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/internal/services"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account and returns it with a token
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.auth.Register(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// Login verifies credentials and returns the account with a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.auth.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}
