package music

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Song is a catalog entry. Songs are seeded once and never edited afterwards;
// only unlock membership changes.
type Song struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Artist      string         `gorm:"size:200;not null" json:"artist"`
	Mood        string         `gorm:"size:20;not null;index" json:"mood"`
	PlaybackURL string         `gorm:"type:text" json:"playback_url"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// SongUnlock records that a user has paid to unlock a song. The unique index
// makes membership idempotent at the store level.
type SongUnlock struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SongID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_song_unlock_song_user" json:"song_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_song_unlock_song_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// --- DTOs ---

// SongResponse is a Song augmented with the caller's unlock/favorite state.
type SongResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Mood        string    `json:"mood"`
	PlaybackURL string    `json:"playback_url,omitempty"`
	Unlocked    bool      `json:"unlocked"`
	Favorite    bool      `json:"favorite"`
}

type UnlockResponse struct {
	SongID uuid.UUID `json:"song_id"`
	Coins  int       `json:"coins"`
}
