package music

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &Song{}, &SongUnlock{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, coins int) uuid.UUID {
	t.Helper()
	user := services.DefaultProfile(uuid.New(), "Music Tester", nil, false)
	user.Coins = coins
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestEnsureSeeded(t *testing.T) {
	db := testDB(t)

	if err := EnsureSeeded(db); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}

	var count int64
	db.Model(&Song{}).Count(&count)
	if count != int64(len(defaultSongs)) {
		t.Errorf("seeded %d songs, want %d", count, len(defaultSongs))
	}

	// A second call must not duplicate anything.
	if err := EnsureSeeded(db); err != nil {
		t.Fatalf("second EnsureSeeded: %v", err)
	}
	db.Model(&Song{}).Count(&count)
	if count != int64(len(defaultSongs)) {
		t.Errorf("after reseed: %d songs, want %d", count, len(defaultSongs))
	}
}

func TestListHidesLockedPlaybackURLs(t *testing.T) {
	db := testDB(t)
	wallet := services.NewWalletService(db)
	svc := NewMusicService(db, wallet, 30)
	userID := seedUser(t, db, 100)

	songs, err := svc.List(userID, "", "", TabAll)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(songs) != len(defaultSongs) {
		t.Fatalf("listed %d songs, want %d", len(songs), len(defaultSongs))
	}
	for _, s := range songs {
		if s.Unlocked {
			t.Errorf("song %q unlocked for a fresh user", s.Title)
		}
		if s.PlaybackURL != "" {
			t.Errorf("song %q exposes playback URL while locked", s.Title)
		}
	}

	if _, err := svc.Unlock(userID, songs[0].ID); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	songs, err = svc.List(userID, "", "", TabAll)
	if err != nil {
		t.Fatalf("List after unlock: %v", err)
	}
	for _, s := range songs {
		if s.Unlocked && s.PlaybackURL == "" {
			t.Errorf("unlocked song %q missing playback URL", s.Title)
		}
		if !s.Unlocked && s.PlaybackURL != "" {
			t.Errorf("locked song %q exposes playback URL", s.Title)
		}
	}
}

func TestListFilters(t *testing.T) {
	db := testDB(t)
	wallet := services.NewWalletService(db)
	svc := NewMusicService(db, wallet, 30)
	userID := seedUser(t, db, 0)

	byMood, err := svc.List(userID, "", "happy", TabAll)
	if err != nil {
		t.Fatalf("List by mood: %v", err)
	}
	for _, s := range byMood {
		if s.Mood != "happy" {
			t.Errorf("mood filter leaked song with mood %q", s.Mood)
		}
	}

	bySearch, err := svc.List(userID, "gentle", "", TabAll)
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Title != "Gentle Rain" {
		t.Errorf("search %q matched %d songs, want exactly Gentle Rain", "gentle", len(bySearch))
	}
}

func TestUnlockDebitsExactCost(t *testing.T) {
	db := testDB(t)
	wallet := services.NewWalletService(db)
	svc := NewMusicService(db, wallet, 30)
	userID := seedUser(t, db, 30)

	if err := EnsureSeeded(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var song Song
	if err := db.First(&song).Error; err != nil {
		t.Fatalf("pick song: %v", err)
	}

	resp, err := svc.Unlock(userID, song.ID)
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if resp.Coins != 0 {
		t.Errorf("balance after unlock = %d, want 0", resp.Coins)
	}

	var unlock SongUnlock
	if err := db.Where("song_id = ? AND user_id = ?", song.ID, userID).First(&unlock).Error; err != nil {
		t.Errorf("unlock membership not recorded: %v", err)
	}

	if _, err := svc.Unlock(userID, song.ID); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Errorf("second unlock err = %v, want ErrAlreadyUnlocked", err)
	}
}

func TestUnlockinsufficientLeavesStateUntouched(t *testing.T) {
	db := testDB(t)
	wallet := services.NewWalletService(db)
	svc := NewMusicService(db, wallet, 30)
	userID := seedUser(t, db, 29)

	if err := EnsureSeeded(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var song Song
	if err := db.First(&song).Error; err != nil {
		t.Fatalf("pick song: %v", err)
	}

	if _, err := svc.Unlock(userID, song.ID); !errors.Is(err, services.ErrInsufficientCoins) {
		t.Fatalf("Unlock err = %v, want ErrInsufficientCoins", err)
	}

	balance, err := wallet.Balance(userID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 29 {
		t.Errorf("balance after failed unlock = %d, want 29", balance)
	}

	var count int64
	db.Model(&SongUnlock{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Errorf("failed unlock recorded %d memberships, want 0", count)
	}
}

func TestUnlockUnknownSong(t *testing.T) {
	db := testDB(t)
	svc := NewMusicService(db, services.NewWalletService(db), 30)
	userID := seedUser(t, db, 100)

	if _, err := svc.Unlock(userID, uuid.New()); !errors.Is(err, ErrSongNotFound) {
		t.Errorf("Unlock unknown song err = %v, want ErrSongNotFound", err)
	}
}

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	db := testDB(t)
	svc := NewMusicService(db, services.NewWalletService(db), 30)
	userID := seedUser(t, db, 0)

	if err := EnsureSeeded(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var song Song
	if err := db.First(&song).Error; err != nil {
		t.Fatalf("pick song: %v", err)
	}

	favs, err := svc.ToggleFavorite(userID, song.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if len(favs) != 1 || favs[0] != song.ID.String() {
		t.Errorf("favorites after add = %v, want [%s]", favs, song.ID)
	}

	favs, err = svc.ToggleFavorite(userID, song.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("favorites after remove = %v, want empty", favs)
	}
}
