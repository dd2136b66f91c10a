package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/dto"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"github.com/moodmateapp/moodmate-backend/internal/session"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Me returns the caller's profile, bootstrapping the default one on first
// access. When the store is degraded the response is served from the default
// profile and marked persisted=false.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var email *string
	if e := session.GetEmail(c); e != "" {
		email = &e
	}

	user, persisted := h.profiles.GetOrCreate(userID, "", email, session.IsGuest(c))

	resp := dto.UserResponse{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Guest:       user.Guest,
		Coins:       user.Coins,
		Mood:        user.Mood,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}

	return c.JSON(fiber.Map{
		"user":      resp,
		"persisted": persisted,
	})
}

// UpdateMe applies a partial update to mutable profile fields.
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var body struct {
		DisplayName *string `json:"display_name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	fields := map[string]interface{}{}
	if body.DisplayName != nil && *body.DisplayName != "" {
		fields["display_name"] = *body.DisplayName
	}
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No updatable fields provided",
		})
	}

	if err := h.profiles.Update(userID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{"message": "Profile updated"})
}
