package mood

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidMood      = errors.New("unknown mood")
	ErrMoodLimitReached = errors.New("you can only update your mood 3 times per day")
)

// MoodService enforces the daily mood-change cap and persists mood updates.
type MoodService struct {
	db         *gorm.DB
	dailyLimit int
}

func NewMoodService(db *gorm.DB, dailyLimit int) *MoodService {
	if dailyLimit <= 0 {
		dailyLimit = 3
	}
	return &MoodService{db: db, dailyLimit: dailyLimit}
}

// SetMood applies a mood change at now. On success the mood, the update
// timestamp and the daily counter are written in a single update; on
// ErrMoodLimitReached nothing is mutated.
func (s *MoodService) SetMood(userID uuid.UUID, newMood string, now time.Time) (*models.User, error) {
	if !models.IsValidMood(newMood) {
		return nil, ErrInvalidMood
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	count, ok := NextCount(user.LastMoodUpdate, user.MoodUpdateCount, s.dailyLimit, now)
	if !ok {
		return nil, ErrMoodLimitReached
	}

	updates := map[string]interface{}{
		"mood":              newMood,
		"last_mood_update":  now,
		"mood_update_count": count,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update mood: %w", err)
	}

	user.Mood = newMood
	user.LastMoodUpdate = &now
	user.MoodUpdateCount = count
	return &user, nil
}

// GetMood returns the current mood and the number of changes left today.
func (s *MoodService) GetMood(userID uuid.UUID, now time.Time) (string, int, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return "", 0, err
	}
	remaining := Remaining(user.LastMoodUpdate, user.MoodUpdateCount, s.dailyLimit, now)
	return user.Mood, remaining, nil
}
