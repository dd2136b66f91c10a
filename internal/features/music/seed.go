package music

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedSong struct {
	Title  string
	Artist string
	Mood   string
	URL    string
}

var defaultSongs = []seedSong{
	{Title: "Sunny Vibes", Artist: "Aura Beats", Mood: "happy", URL: "https://cdn.pixabay.com/download/audio/2021/08/09/audio_5f2b18a5b2.mp3?filename=happy-day-113985.mp3"},
	{Title: "Gentle Rain", Artist: "Calm Lab", Mood: "sad", URL: "https://cdn.pixabay.com/download/audio/2021/10/20/audio_5ca25fbf21.mp3?filename=raining-ambient-ambient-9082.mp3"},
	{Title: "Solo Walk", Artist: "LoFi Night", Mood: "lonely", URL: "https://cdn.pixabay.com/download/audio/2021/11/13/audio_19f402eade.mp3?filename=calm-lofi-ambient-110199.mp3"},
	{Title: "Fire Mode", Artist: "Pump Squad", Mood: "angry", URL: "https://cdn.pixabay.com/download/audio/2022/03/10/audio_6738b02de2.mp3?filename=energetic-rock-111120.mp3"},
	{Title: "Butterflies", Artist: "Soft Hearts", Mood: "romantic", URL: "https://cdn.pixabay.com/download/audio/2021/09/27/audio_1a63df1820.mp3?filename=romantic-ambient-9686.mp3"},
	{Title: "Weekend Hype", Artist: "Neon Wave", Mood: "excited", URL: "https://cdn.pixabay.com/download/audio/2022/03/08/audio_4a799d3c9b.mp3?filename=future-bass-117078.mp3"},
	{Title: "HaHa Hop", Artist: "Fun Tones", Mood: "funny", URL: "https://cdn.pixabay.com/download/audio/2021/10/01/audio_80216d8bd6.mp3?filename=funny-tune-9804.mp3"},
	{Title: "Deep Blue", Artist: "Inner Space", Mood: "depressed", URL: "https://cdn.pixabay.com/download/audio/2021/09/09/audio_4d68a5f6b7.mp3?filename=deep-ambient-8191.mp3"},
}

// EnsureSeeded inserts the default song catalog if and only if the songs
// table is completely empty. A crash mid-seed leaves a partial catalog that a
// later call will not reconcile; seeding is run-once-when-empty.
func EnsureSeeded(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Song{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count songs: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range defaultSongs {
		song := Song{
			ID:          uuid.New(),
			Title:       s.Title,
			Artist:      s.Artist,
			Mood:        s.Mood,
			PlaybackURL: s.URL,
		}
		if err := db.Create(&song).Error; err != nil {
			return fmt.Errorf("failed to seed song %q: %w", s.Title, err)
		}
	}

	slog.Info("seeded song catalog", "songs", len(defaultSongs))
	return nil
}
