package chat

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/config"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/gorm"
)

// Plugin implements the features.Plugin interface for companion chat.
type Plugin struct {
	moderation *services.ModerationService
}

func New(moderation *services.ModerationService) *Plugin {
	return &Plugin{moderation: moderation}
}

func (p *Plugin) ID() string { return "chat" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&ChatMessage{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewChatService(db, p.moderation, nil)
	handler := NewChatHandler(svc)

	router.Post("/chat/messages", handler.SendMessage)
	router.Get("/chat/messages", handler.History)
}
