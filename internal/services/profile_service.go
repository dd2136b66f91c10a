package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileService reads and bootstraps user profiles. When the database is
// unreachable it degrades to an in-memory default profile instead of failing,
// so a signed-in client always has something to render.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// DefaultProfile builds the profile every identity starts with: zero coins,
// the default mood, no favorites, no theme.
func DefaultProfile(id uuid.UUID, displayName string, email *string, guest bool) *models.User {
	if displayName == "" {
		if guest {
			displayName = "Guest User"
		} else {
			displayName = "User"
		}
	}
	return &models.User{
		ID:          id,
		DisplayName: displayName,
		Email:       email,
		Guest:       guest,
		Coins:       0,
		Mood:        models.DefaultMood,
		Favorites:   datatypes.JSON([]byte("[]")),
	}
}

func (s *ProfileService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreate fetches the profile for an authenticated identity, persisting
// the default profile if none exists yet. A store failure that is not
// record-not-found is absorbed: the caller gets a non-persisted default
// (persisted == false) and must treat it as potentially unsaved.
func (s *ProfileService) GetOrCreate(userID uuid.UUID, displayName string, email *string, guest bool) (user *models.User, persisted bool) {
	var existing models.User
	err := s.db.First(&existing, "id = ?", userID).Error
	if err == nil {
		return &existing, true
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Warn("profile store unreachable, serving degraded default", "user_id", userID, "error", err)
		return DefaultProfile(userID, displayName, email, guest), false
	}

	created := DefaultProfile(userID, displayName, email, guest)
	if err := s.db.Create(created).Error; err != nil {
		slog.Warn("profile create failed, serving degraded default", "user_id", userID, "error", err)
		return created, false
	}
	return created, true
}

// Update applies a partial field update in a single statement.
func (s *ProfileService) Update(userID uuid.UUID, fields map[string]interface{}) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error
}
