package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/database"
)

// GuideHandler serves the guide directory
type GuideHandler struct {
	guides *database.GuideRepository
}

// NewGuideHandler creates a new GuideHandler
func NewGuideHandler(guides *database.GuideRepository) *GuideHandler {
	return &GuideHandler{guides: guides}
}

// List returns all guides, highest rated first
func (h *GuideHandler) List(c *gin.Context) {
	guides, err := h.guides.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, "guides", guides, len(guides))
}

// Get returns a single guide
func (h *GuideHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid guide id")
		return
	}

	guide, err := h.guides.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, guide)
}
