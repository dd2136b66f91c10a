package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
)

func TestDefaultProfile(t *testing.T) {
	email := "x@example.com"

	tests := []struct {
		name        string
		displayName string
		email       *string
		guest       bool
		wantName    string
	}{
		{"named user", "Asha", &email, false, "Asha"},
		{"unnamed user", "", &email, false, "User"},
		{"unnamed guest", "", nil, true, "Guest User"},
		{"named guest", "Visitor", nil, true, "Visitor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile(uuid.New(), tt.displayName, tt.email, tt.guest)
			if p.DisplayName != tt.wantName {
				t.Errorf("display name = %q, want %q", p.DisplayName, tt.wantName)
			}
			if p.Coins != 0 {
				t.Errorf("coins = %d, want 0", p.Coins)
			}
			if p.Mood != models.DefaultMood {
				t.Errorf("mood = %q, want %q", p.Mood, models.DefaultMood)
			}
			if p.Guest != tt.guest {
				t.Errorf("guest = %v, want %v", p.Guest, tt.guest)
			}
			if string(p.Favorites) != "[]" {
				t.Errorf("favorites = %s, want []", p.Favorites)
			}
		})
	}
}

func TestGetOrCreatePersistsOnce(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)
	id := uuid.New()

	created, persisted := svc.GetOrCreate(id, "Asha", nil, false)
	if !persisted {
		t.Fatal("first GetOrCreate not persisted")
	}
	if created.ID != id {
		t.Errorf("id = %s, want %s", created.ID, id)
	}

	// A second call returns the stored row, not a fresh default.
	again, persisted := svc.GetOrCreate(id, "Someone Else", nil, true)
	if !persisted {
		t.Fatal("second GetOrCreate not persisted")
	}
	if again.DisplayName != "Asha" || again.Guest {
		t.Errorf("second call rebuilt the profile: name %q guest %v", again.DisplayName, again.Guest)
	}
}
