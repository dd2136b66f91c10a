package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount     = errors.New("amount must be a positive integer")
	ErrInsufficientCoins = errors.New("insufficient coins")
)

// WalletService owns coin balance mutations. Debits are store-enforced
// conditional updates, so a balance can never go below zero even under
// concurrent spends.
type WalletService struct {
	db *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// WithTx returns a WalletService bound to the given transaction handle.
func (s *WalletService) WithTx(tx *gorm.DB) *WalletService {
	return &WalletService{db: tx}
}

func (s *WalletService) Balance(userID uuid.UUID) (int, error) {
	var user models.User
	if err := s.db.Select("coins").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.Coins, nil
}

// Credit adds amount to the user's balance and returns the new balance.
func (s *WalletService) Credit(userID uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", amount))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to credit coins: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return s.Balance(userID)
}

// Debit subtracts amount from the user's balance. The sufficiency check and
// the write are a single conditional UPDATE (coins >= amount), so two
// concurrent debits can never both succeed against one amount of balance.
// Returns ErrInsufficientCoins with the balance untouched when it would go
// negative.
func (s *WalletService) Debit(userID uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	result := s.db.Model(&models.User{}).
		Where("id = ? AND coins >= ?", userID, amount).
		Update("coins", gorm.Expr("coins - ?", amount))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to debit coins: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the user does not exist or the balance is short.
		var user models.User
		if err := s.db.Select("id").First(&user, "id = ?", userID).Error; err != nil {
			return 0, err
		}
		return 0, ErrInsufficientCoins
	}

	return s.Balance(userID)
}
