package themes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Theme is a purchasable color scheme. Colors holds an ordered triplet of hex
// values. Themes are seeded once and only ever read afterwards.
type Theme struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Colors    datatypes.JSON `gorm:"type:jsonb;not null" json:"colors"`
	Cost      int            `gorm:"not null" json:"cost"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type ApplyResponse struct {
	ThemeID uuid.UUID `json:"theme_id"`
	Name    string    `json:"name"`
	Coins   int       `json:"coins"`
}
