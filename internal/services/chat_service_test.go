package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatReplyGeneratesSessionID(t *testing.T) {
	svc := NewChatService()

	reply := svc.Reply("hello there", "")
	require.NotEmpty(t, reply.SessionID)
	_, err := uuid.Parse(reply.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, "hello there", reply.UserMessage)
	assert.NotEmpty(t, reply.BotResponse)
}

func TestChatReplyKeepsSessionID(t *testing.T) {
	svc := NewChatService()

	reply := svc.Reply("thanks a lot", "session-abc")
	assert.Equal(t, "session-abc", reply.SessionID)
	assert.Equal(t, "thanks", reply.Category)
}

func TestChatRouting(t *testing.T) {
	svc := NewChatService()

	tests := []struct {
		message  string
		category string
	}{
		{"Ayubowan!", "greeting"},
		{"HELLO", "greeting"},
		{"thank you so much", "thanks"},
		{"what can you do for me", "help"},
		{"Where should I visit?", "destination"},
		{"I want to book a safari", "booking"},
		{"how much does it cost", "price"},
		{"asdf qwerty", "fallback"},
	}

	for _, tt := range tests {
		reply := svc.Reply(tt.message, "s1")
		assert.Equal(t, tt.category, reply.Category, "message %q", tt.message)
	}
}

func TestChatFallbackResponses(t *testing.T) {
	svc := NewChatService()

	reply := svc.Reply("tell me about quantum physics", "s1")
	assert.Equal(t, "fallback", reply.Category)
	assert.NotEmpty(t, reply.BotResponse)
}
