package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmateapp/moodmate-backend/internal/dto"
)

// plans are display-only tiers. There is no purchase or entitlement flow;
// clients render these on the premium screen.
var plans = []dto.SubscriptionPlan{
	{
		ID:          "basic",
		Name:        "Basic",
		Description: "Ad-free listening for a month",
		PriceINR:    29,
		DurationMo:  1,
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Description: "All songs and themes unlocked for a month",
		PriceINR:    49,
		DurationMo:  1,
	},
	{
		ID:          "full_access",
		Name:        "Full Access",
		Description: "Everything unlocked for six months",
		PriceINR:    69,
		DurationMo:  6,
		Highlight:   true,
	},
}

type SubscriptionHandler struct{}

func NewSubscriptionHandler() *SubscriptionHandler {
	return &SubscriptionHandler{}
}

func (h *SubscriptionHandler) Plans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"plans": plans})
}
