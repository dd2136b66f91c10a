package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/config"
	"github.com/moodmateapp/moodmate-backend/internal/dto"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"github.com/moodmateapp/moodmate-backend/internal/session"
	"gorm.io/gorm"
)

type WalletHandler struct {
	wallet *services.WalletService
	cfg    *config.Config
}

func NewWalletHandler(wallet *services.WalletService, cfg *config.Config) *WalletHandler {
	return &WalletHandler{wallet: wallet, cfg: cfg}
}

func (h *WalletHandler) Balance(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	coins, err := h.wallet.Balance(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch balance",
		})
	}

	return c.JSON(dto.WalletResponse{Coins: coins})
}

// Earn credits the fixed ad-reward amount. The client calls this after a
// rewarded ad completes; the server does not verify ad playback.
func (h *WalletHandler) Earn(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	coins, err := h.wallet.Credit(userID, h.cfg.AdRewardCoins)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to credit coins",
		})
	}

	return c.JSON(dto.EarnResponse{Coins: coins, Earned: h.cfg.AdRewardCoins})
}

// AdminCredit grants an arbitrary amount to any user. Admin-only.
func (h *WalletHandler) AdminCredit(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.AdminCreditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	coins, err := h.wallet.Credit(userID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to credit coins",
		})
	}

	return c.JSON(dto.WalletResponse{Coins: coins})
}
