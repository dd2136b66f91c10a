package themes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"github.com/moodmateapp/moodmate-backend/internal/session"
)

type ThemeHandler struct {
	service *ThemeService
}

func NewThemeHandler(service *ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

// ListThemes handles GET /api/p/themes
func (h *ThemeHandler) ListThemes(c *fiber.Ctx) error {
	list, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch themes",
		})
	}

	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// UnlockTheme handles POST /api/p/themes/:id/unlock
func (h *ThemeHandler) UnlockTheme(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	themeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid theme id",
		})
	}

	resp, err := h.service.Unlock(userID, themeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrThemeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		case errors.Is(err, services.ErrInsufficientCoins):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to unlock theme",
		})
	}

	return c.JSON(resp)
}
