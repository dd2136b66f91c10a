package mood

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin implements the features.Plugin interface for mood tracking.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "mood" }

// Models returns nil: mood state lives on the shared User model.
func (p *Plugin) Models() []interface{} {
	return nil
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewMoodService(db, cfg.MoodDailyLimit)
	handler := NewMoodHandler(svc)

	router.Get("/mood", handler.GetMood)
	router.Put("/mood", handler.SetMood)
}
