package services

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// ChatService answers travel questions with keyword-routed canned
// responses. It keeps no per-session state; the session id just lets
// clients thread a conversation.
type ChatService struct {
	categories []chatCategory
	fallback   []string
}

type chatCategory struct {
	name      string
	keywords  []string
	responses []string
}

// NewChatService creates the assistant with its Sri Lanka response set.
// Categories are matched in order; the first keyword hit wins.
func NewChatService() *ChatService {
	return &ChatService{
		categories: []chatCategory{
			{
				name:     "greeting",
				keywords: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "ayubowan"},
				responses: []string{
					"Ayubowan! Welcome to Sri Lanka Tourism. How can I help plan your island adventure today?",
					"Hello! Ready to explore the Pearl of the Indian Ocean? How can I assist you?",
					"Greetings! I'm here to help you discover Sri Lanka's wonders. Where would you like to explore?",
				},
			},
			{
				name:     "thanks",
				keywords: []string{"thanks", "thank you", "appreciate", "thx", "bohoma sthuthi"},
				responses: []string{
					"You're most welcome! Enjoy exploring beautiful Sri Lanka.",
					"My pleasure! Have a wonderful time in the Pearl of the Indian Ocean.",
					"Glad I could help! Safe travels and enjoy Sri Lankan hospitality.",
				},
			},
			{
				name:     "help",
				keywords: []string{"help", "what can you do", "assist", "support"},
				responses: []string{
					"I can help you: find Sri Lankan destinations, check prices, plan itineraries, or answer travel questions about Sri Lanka.",
					"I'm here to assist with: Sri Lankan cultural sites, beaches, wildlife parks, tea country, and local experiences.",
					"I can help with Sri Lankan destination recommendations, local customs, best travel times, and authentic experiences!",
				},
			},
			{
				name:     "destination",
				keywords: []string{"destination", "place", "where", "recommend", "visit", "travel to", "go to", "sri lanka"},
				responses: []string{
					"Sri Lanka offers incredible diversity! Visit Sigiriya Rock Fortress for ancient history and stunning views.",
					"How about Ella in the hill country? Misty mountains, tea plantations, and the famous Nine Arch Bridge await!",
					"Mirissa beach is perfect for whale watching and pristine coastal relaxation.",
					"Kandy's Temple of the Tooth offers deep cultural and spiritual experiences.",
					"Yala National Park provides amazing wildlife safaris - Sri Lanka has the highest leopard density in the world!",
					"The Cultural Triangle with Anuradhapura and Polonnaruwa showcases 2,500 years of Sri Lankan civilization.",
				},
			},
			{
				name:     "booking",
				keywords: []string{"book", "reservation", "reserve", "arrange", "schedule"},
				responses: []string{
					"To book your Sri Lankan adventure, please specify: destination, travel dates, and number of travelers.",
					"I can help you book authentic Sri Lankan experiences. Tell me what regions interest you most!",
					"Let's plan your Sri Lankan journey! Please provide: preferred experiences, travel dates, and group size.",
				},
			},
			{
				name:     "price",
				keywords: []string{"price", "cost", "how much", "deal", "discount", "cheap", "budget"},
				responses: []string{
					"Sri Lankan travel offers excellent value! Prices vary by season - December to April is peak season.",
					"I can find the best prices for Sri Lankan experiences. Which region are you most interested in?",
					"Sri Lanka is very affordable compared to other destinations. Tell me your preferences and I'll find great local deals.",
				},
			},
		},
		fallback: []string{
			"I specialize in Sri Lankan travel. Could you ask about our destinations, culture, or experiences?",
			"I'm focused on helping with Sri Lankan travel planning. Try asking about beaches, cultural sites, or wildlife.",
			"I don't have information about that, but I'd love to help with Sri Lankan travel questions!",
		},
	}
}

// Reply routes the message to a category and picks one of its canned
// answers. An empty session id starts a new conversation thread.
func (s *ChatService) Reply(message, sessionID string) *models.ChatReply {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	category, responses := s.route(message)
	return &models.ChatReply{
		SessionID:   sessionID,
		UserMessage: message,
		BotResponse: responses[rand.Intn(len(responses))],
		Category:    category,
		Timestamp:   time.Now(),
	}
}

func (s *ChatService) route(message string) (string, []string) {
	lower := strings.ToLower(message)
	for _, category := range s.categories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				return category.name, category.responses
			}
		}
	}
	return "fallback", s.fallback
}
