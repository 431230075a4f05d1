package models

import (
	"time"
)

// ChatRequest is the body for POST /api/chat
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatReply carries the assistant's answer to a single chat message
type ChatReply struct {
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}
