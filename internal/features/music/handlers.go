package music

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"github.com/moodmateapp/moodmate-backend/internal/session"
)

// MusicHandler handles HTTP requests for the song catalog.
type MusicHandler struct {
	service *MusicService
}

func NewMusicHandler(service *MusicService) *MusicHandler {
	return &MusicHandler{service: service}
}

// ListSongs handles GET /api/p/songs
func (h *MusicHandler) ListSongs(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	tab := c.Query("tab", TabAll)
	if tab != TabAll && tab != TabFavorites && tab != TabLocked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid tab",
		})
	}

	songs, err := h.service.List(userID, c.Query("search"), c.Query("mood"), tab)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch songs",
		})
	}

	return c.JSON(fiber.Map{"data": songs, "total": len(songs)})
}

// UnlockSong handles POST /api/p/songs/:id/unlock
func (h *MusicHandler) UnlockSong(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	songID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid song id",
		})
	}

	resp, err := h.service.Unlock(userID, songID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSongNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		case errors.Is(err, ErrAlreadyUnlocked):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		case errors.Is(err, services.ErrInsufficientCoins):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to unlock song",
		})
	}

	return c.JSON(resp)
}

// ToggleFavorite handles POST /api/p/songs/:id/favorite
func (h *MusicHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	songID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid song id",
		})
	}

	favorites, err := h.service.ToggleFavorite(userID, songID)
	if err != nil {
		if errors.Is(err, ErrSongNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to update favorites",
		})
	}

	return c.JSON(fiber.Map{"favorites": favorites})
}
