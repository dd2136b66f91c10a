package services

import (
	"errors"
	"testing"
	"time"

	"github.com/moodmateapp/moodmate-backend/internal/config"
	"github.com/moodmateapp/moodmate-backend/internal/dto"
	"github.com/moodmateapp/moodmate-backend/internal/models"
	"gorm.io/gorm"
)

func testAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
	return NewAuthService(db, cfg, NewProfileService(db)), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := testAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Register returned empty tokens")
	}
	if resp.User.Coins != 0 || resp.User.Mood != models.DefaultMood {
		t.Errorf("new profile = coins %d mood %q, want 0 %q", resp.User.Coins, resp.User.Mood, models.DefaultMood)
	}

	login, err := svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Error("Login returned a different user")
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testAuthService(t)

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "longenough"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := testAuthService(t)

	if _, err := svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "short"}); err == nil {
		t.Error("Register with short password succeeded, want error")
	}
}

func TestGuestSignIn(t *testing.T) {
	svc, db := testAuthService(t)

	resp, err := svc.Guest(&dto.GuestRequest{})
	if err != nil {
		t.Fatalf("Guest: %v", err)
	}
	if !resp.User.Guest {
		t.Error("guest flag not set")
	}
	if resp.User.DisplayName != "Guest User" {
		t.Errorf("display name = %q, want %q", resp.User.DisplayName, "Guest User")
	}
	if resp.User.Coins != 0 || resp.User.Mood != models.DefaultMood {
		t.Errorf("guest profile = coins %d mood %q, want default", resp.User.Coins, resp.User.Mood)
	}

	// Guests cannot log in with credentials.
	var user models.User
	if err := db.First(&user, "id = ?", resp.User.ID).Error; err != nil {
		t.Fatalf("load guest: %v", err)
	}
	if user.Password != "" {
		t.Error("guest has a password hash")
	}
}

func TestRefreshRotation(t *testing.T) {
	svc, _ := testAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "r@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The old token is revoked by rotation.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused refresh token err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := testAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "l@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after logout err = %v, want ErrInvalidToken", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	svc, db := testAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "d@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.DeleteAccount(reg.User.ID, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("delete with wrong password err = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.DeleteAccount(reg.User.ID, "longenough"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	var user models.User
	if err := db.First(&user, "id = ?", reg.User.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("user still loadable after delete: %v", err)
	}
}
