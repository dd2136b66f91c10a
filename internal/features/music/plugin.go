package music

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/config"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/gorm"
)

// Plugin implements the features.Plugin interface for the song catalog.
type Plugin struct {
	wallet *services.WalletService
}

func New(wallet *services.WalletService) *Plugin {
	return &Plugin{wallet: wallet}
}

func (p *Plugin) ID() string { return "music" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Song{},
		&SongUnlock{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewMusicService(db, p.wallet, cfg.SongUnlockCost)
	handler := NewMusicHandler(svc)

	router.Get("/songs", handler.ListSongs)
	router.Post("/songs/:id/unlock", handler.UnlockSong)
	router.Post("/songs/:id/favorite", handler.ToggleFavorite)
}
