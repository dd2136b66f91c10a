package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Moods a user can pick. The chat responder maps moods outside its phrase
// tables to a default bucket, so this list can grow without touching it.
var Moods = []string{"happy", "sad", "angry", "lonely", "excited", "romantic", "funny", "depressed"}

// DefaultMood is assigned when a profile is first created.
const DefaultMood = "happy"

// IsValidMood reports whether mood is one of the supported values.
func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// User is the persisted profile: identity, coin balance, current mood and
// unlock state. Created once on first sign-in with zero coins and the
// default mood. MoodUpdateCount is only meaningful relative to the calendar
// date of LastMoodUpdate; a new day resets the effective count.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName     string         `gorm:"size:100;not null" json:"display_name"`
	Email           *string        `gorm:"size:255;uniqueIndex" json:"email"`
	Password        string         `gorm:"not null;default:''" json:"-"`
	Role            string         `gorm:"size:20;default:'user'" json:"role"`
	Guest           bool           `gorm:"default:false" json:"guest"`
	Coins           int            `gorm:"not null;default:0" json:"coins"`
	Mood            string         `gorm:"size:20;not null;default:'happy'" json:"mood"`
	Favorites       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"favorites"`
	ThemeID         *uuid.UUID     `gorm:"type:uuid" json:"theme_id"`
	LastMoodUpdate  *time.Time     `json:"last_mood_update"`
	MoodUpdateCount int            `gorm:"default:0" json:"mood_update_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
