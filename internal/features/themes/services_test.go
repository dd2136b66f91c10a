package themes

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

	if err := db.AutoMigrate(&models.User{}, &Theme{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, coins int) uuid.UUID {
	t.Helper()
	user := services.DefaultProfile(uuid.New(), "Theme Tester", nil, false)
	user.Coins = coins
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestListSeedsOnce(t *testing.T) {
	db := testDB(t)
	svc := NewThemeService(db, services.NewWalletService(db))

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != len(defaultThemes) {
		t.Errorf("listed %d themes, want %d", len(list), len(defaultThemes))
	}

	list, err = svc.List()
	if err != nil {
		t.Fatalf("second List: %v", err)
	}
	if len(list) != len(defaultThemes) {
		t.Errorf("after reseed: %d themes, want %d", len(list), len(defaultThemes))
	}
}

func TestUnlockAppliesTheme(t *testing.T) {
	db := testDB(t)
	wallet := services.NewWalletService(db)
	svc := NewThemeService(db, wallet)
	userID := seedUser(t, db, 50)

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	theme := list[0]

	resp, err := svc.Unlock(userID, theme.ID)
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if resp.Coins != 0 {
		t.Errorf("balance after unlock = %d, want 0", resp.Coins)
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.ThemeID == nil || *user.ThemeID != theme.ID {
		t.Errorf("user theme = %v, want %s", user.ThemeID, theme.ID)
	}
}

func TestUnlockInsufficientCoins(t *testing.T) {
	db := testDB(t)
	wallet := services.NewWalletService(db)
	svc := NewThemeService(db, wallet)
	userID := seedUser(t, db, 49)

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if _, err := svc.Unlock(userID, list[0].ID); !errors.Is(err, services.ErrInsufficientCoins) {
		t.Fatalf("Unlock err = %v, want ErrInsufficientCoins", err)
	}

	// Neither the balance nor the applied theme may change on failure.
	balance, err := wallet.Balance(userID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 49 {
		t.Errorf("balance after failed unlock = %d, want 49", balance)
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.ThemeID != nil {
		t.Errorf("theme applied despite failed debit: %s", *user.ThemeID)
	}
}

func TestUnlockUnknownTheme(t *testing.T) {
	db := testDB(t)
	svc := NewThemeService(db, services.NewWalletService(db))
	userID := seedUser(t, db, 100)

	if _, err := svc.Unlock(userID, uuid.New()); !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("Unlock unknown theme err = %v, want ErrThemeNotFound", err)
	}
}
