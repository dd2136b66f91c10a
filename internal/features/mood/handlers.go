package mood

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"github.com/moodmateapp/moodmate-backend/internal/session"
)

// MoodHandler handles HTTP requests for mood updates.
type MoodHandler struct {
	service *MoodService
}

func NewMoodHandler(service *MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// SetMood handles PUT /api/p/mood
func (h *MoodHandler) SetMood(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Mood string `json:"mood"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	user, err := h.service.SetMood(userID, req.Mood, time.Now())
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, ErrMoodLimitReached) {
			status = fiber.StatusTooManyRequests
		}
		return c.Status(status).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mood":              user.Mood,
		"mood_update_count": user.MoodUpdateCount,
	})
}

// GetMood handles GET /api/p/mood
func (h *MoodHandler) GetMood(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	current, remaining, err := h.service.GetMood(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": "Profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"mood":            current,
		"remaining_today": remaining,
		"available_moods": models.Moods,
	})
}
