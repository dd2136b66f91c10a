package themes

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/gorm"
)

var ErrThemeNotFound = errors.New("theme not found")

// ThemeService owns the theme catalog and paid theme application.
type ThemeService struct {
	db     *gorm.DB
	wallet *services.WalletService
}

func NewThemeService(db *gorm.DB, wallet *services.WalletService) *ThemeService {
	return &ThemeService{db: db, wallet: wallet}
}

func (s *ThemeService) List() ([]Theme, error) {
	if err := EnsureSeeded(s.db); err != nil {
		return nil, err
	}

	var list []Theme
	if err := s.db.Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Unlock debits the theme's cost and applies it as the user's current theme,
// both inside one transaction. On ErrInsufficientCoins the profile and the
// balance stay untouched.
func (s *ThemeService) Unlock(userID, themeID uuid.UUID) (*ApplyResponse, error) {
	var theme Theme
	if err := s.db.First(&theme, "id = ?", themeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, err
	}

	var balance int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = s.wallet.WithTx(tx).Debit(userID, theme.Cost)
		if err != nil {
			return err
		}

		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("theme_id", theme.ID)
		if result.Error != nil {
			return fmt.Errorf("failed to apply theme: %w", result.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ApplyResponse{ThemeID: theme.ID, Name: theme.Name, Coins: balance}, nil
}
