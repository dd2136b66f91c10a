package music

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSongNotFound    = errors.New("song not found")
	ErrAlreadyUnlocked = errors.New("song already unlocked")
)

// Tabs accepted by the song listing.
const (
	TabAll       = "all"
	TabFavorites = "favorites"
	TabLocked    = "locked"
)

// MusicService owns the song catalog: listing, paid unlocks and favorites.
type MusicService struct {
	db         *gorm.DB
	wallet     *services.WalletService
	unlockCost int
}

func NewMusicService(db *gorm.DB, wallet *services.WalletService, unlockCost int) *MusicService {
	if unlockCost <= 0 {
		unlockCost = 30
	}
	return &MusicService{db: db, wallet: wallet, unlockCost: unlockCost}
}

// List returns the catalog annotated with the caller's unlock and favorite
// state. search matches title or artist; moodFilter narrows to one mood; tab
// is one of all/favorites/locked.
func (s *MusicService) List(userID uuid.UUID, search, moodFilter, tab string) ([]SongResponse, error) {
	if err := EnsureSeeded(s.db); err != nil {
		return nil, err
	}

	var songs []Song
	q := s.db.Order("title ASC")
	if moodFilter != "" {
		q = q.Where("mood = ?", moodFilter)
	}
	if err := q.Find(&songs).Error; err != nil {
		return nil, err
	}

	unlocked, err := s.unlockedSet(userID)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favoriteSet(userID)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(search)
	result := make([]SongResponse, 0, len(songs))
	for _, song := range songs {
		if text != "" &&
			!strings.Contains(strings.ToLower(song.Title), text) &&
			!strings.Contains(strings.ToLower(song.Artist), text) {
			continue
		}

		isUnlocked := unlocked[song.ID]
		isFavorite := favorites[song.ID.String()]

		switch tab {
		case TabFavorites:
			if !isFavorite {
				continue
			}
		case TabLocked:
			if isUnlocked {
				continue
			}
		}

		resp := SongResponse{
			ID:       song.ID,
			Title:    song.Title,
			Artist:   song.Artist,
			Mood:     song.Mood,
			Unlocked: isUnlocked,
			Favorite: isFavorite,
		}
		// Playback URLs are only handed out for unlocked songs.
		if isUnlocked {
			resp.PlaybackURL = song.PlaybackURL
		}
		result = append(result, resp)
	}

	return result, nil
}

// Unlock debits the song cost and records membership in one transaction.
// On ErrInsufficientCoins neither the balance nor the membership changes.
func (s *MusicService) Unlock(userID, songID uuid.UUID) (*UnlockResponse, error) {
	var song Song
	if err := s.db.First(&song, "id = ?", songID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}

	var existing SongUnlock
	if err := s.db.Where("song_id = ? AND user_id = ?", songID, userID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyUnlocked
	}

	var balance int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = s.wallet.WithTx(tx).Debit(userID, s.unlockCost)
		if err != nil {
			return err
		}

		unlock := SongUnlock{
			ID:     uuid.New(),
			SongID: songID,
			UserID: userID,
		}
		if err := tx.Create(&unlock).Error; err != nil {
			return fmt.Errorf("failed to record unlock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UnlockResponse{SongID: songID, Coins: balance}, nil
}

// ToggleFavorite flips songID's membership in the user's favorites set and
// returns the persisted set. Toggling twice restores the original state.
func (s *MusicService) ToggleFavorite(userID, songID uuid.UUID) ([]string, error) {
	var song Song
	if err := s.db.First(&song, "id = ?", songID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	favorites := decodeFavorites(user.Favorites)
	id := songID.String()

	found := false
	next := make([]string, 0, len(favorites)+1)
	for _, f := range favorites {
		if f == id {
			found = true
			continue
		}
		next = append(next, f)
	}
	if !found {
		next = append(next, id)
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&user).Update("favorites", datatypes.JSON(encoded)).Error; err != nil {
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}

	return next, nil
}

func (s *MusicService) unlockedSet(userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var unlocks []SongUnlock
	if err := s.db.Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(unlocks))
	for _, u := range unlocks {
		set[u.SongID] = true
	}
	return set, nil
}

func (s *MusicService) favoriteSet(userID uuid.UUID) (map[string]bool, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	favorites := decodeFavorites(user.Favorites)
	set := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		set[f] = true
	}
	return set, nil
}

func decodeFavorites(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var favorites []string
	if err := json.Unmarshal(raw, &favorites); err != nil {
		return nil
	}
	return favorites
}
