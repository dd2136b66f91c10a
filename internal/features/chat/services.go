package chat

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"github.com/moodmateapp/moodmate-backend/internal/services"
	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("message text is required")

// ChatService stores the per-user transcript and generates scripted replies
// keyed by the user's current mood.
type ChatService struct {
	db         *gorm.DB
	moderation *services.ModerationService

	mu  sync.Mutex
	rng *rand.Rand
}

// NewChatService creates a ChatService. rng may be nil, in which case a
// time-seeded source is used; tests inject a fixed seed.
func NewChatService(db *gorm.DB, moderation *services.ModerationService, rng *rand.Rand) *ChatService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ChatService{db: db, moderation: moderation, rng: rng}
}

// SendMessage persists the user's message, samples a personality reply from
// the phrase table for the user's current mood, persists it and returns both.
func (s *ChatService) SendMessage(userID uuid.UUID, req *SendMessageRequest) (*SendMessageResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if !IsValidPersonality(req.Personality) {
		return nil, ErrUnknownPersonality
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	if s.moderation != nil {
		if isClean, _ := s.moderation.FilterContent(text); !isClean {
			text = "[content filtered]"
		}
	}

	s.mu.Lock()
	reply, err := Respond(req.Personality, user.Mood, s.rng)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	userMsg := ChatMessage{
		ID:          uuid.New(),
		UserID:      userID,
		Sender:      SenderUser,
		Personality: req.Personality,
		Text:        text,
	}
	aiMsg := ChatMessage{
		ID:          uuid.New(),
		UserID:      userID,
		Sender:      SenderAI,
		Personality: req.Personality,
		Text:        reply,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}
		// The reply timestamp must sort after the user's message.
		aiMsg.CreatedAt = userMsg.CreatedAt.Add(time.Millisecond)
		return tx.Create(&aiMsg).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store messages: %w", err)
	}

	return &SendMessageResponse{UserMessage: userMsg, Reply: aiMsg}, nil
}

// History returns the transcript in chronological order.
func (s *ChatService) History(userID uuid.UUID, limit, offset int) ([]ChatMessage, int64, error) {
	var messages []ChatMessage
	var total int64

	s.db.Model(&ChatMessage{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error

	return messages, total, err
}
