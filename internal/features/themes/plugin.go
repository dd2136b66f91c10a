package themes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/config"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/gorm"
)

// Plugin implements the features.Plugin interface for the theme shop.
type Plugin struct {
	wallet *services.WalletService
}

func New(wallet *services.WalletService) *Plugin {
	return &Plugin{wallet: wallet}
}

func (p *Plugin) ID() string { return "themes" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Theme{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewThemeService(db, p.wallet)
	handler := NewThemeHandler(svc)

	router.Get("/themes", handler.ListThemes)
	router.Post("/themes/:id/unlock", handler.UnlockTheme)
}
