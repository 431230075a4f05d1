package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/internal/models"
	"github.com/mathangi54/Travelling-System/internal/services"
)

// ChatHandler handles the travel assistant endpoint
type ChatHandler struct {
	chat *services.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Send answers a chat message
func (h *ChatHandler) Send(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply := h.chat.Reply(req.Message, req.SessionID)
	respondData(c, http.StatusOK, reply)
}
