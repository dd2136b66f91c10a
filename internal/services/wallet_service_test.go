package services

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/moodmateapp/moodmate-backend/internal/models"
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

	if err := db.AutoMigrate(&models.User{}, &models.RefreshToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, coins int) uuid.UUID {
	t.Helper()
	user := DefaultProfile(uuid.New(), "Test User", nil, false)
	user.Coins = coins
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestWalletCredit(t *testing.T) {
	db := testDB(t)
	wallet := NewWalletService(db)
	userID := seedUser(t, db, 5)

	balance, err := wallet.Credit(userID, 10)
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if balance != 15 {
		t.Errorf("balance = %d, want 15", balance)
	}
}

func TestWalletCreditRejectsNonPositive(t *testing.T) {
	db := testDB(t)
	wallet := NewWalletService(db)
	userID := seedUser(t, db, 5)

	for _, amount := range []int{0, -1} {
		if _, err := wallet.Credit(userID, amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Credit(%d) err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestWalletDebit(t *testing.T) {
	db := testDB(t)
	wallet := NewWalletService(db)

	tests := []struct {
		name        string
		start       int
		amount      int
		wantBalance int
		wantErr     error
	}{
		{"exact balance spends to zero", 30, 30, 0, nil},
		{"partial spend", 50, 30, 20, nil},
		{"one coin short fails", 29, 30, 29, ErrInsufficientCoins},
		{"zero balance fails", 0, 1, 0, ErrInsufficientCoins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := seedUser(t, db, tt.start)

			balance, err := wallet.Debit(userID, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Debit err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && balance != tt.wantBalance {
				t.Errorf("returned balance = %d, want %d", balance, tt.wantBalance)
			}

			// A failed debit must leave the stored balance untouched.
			stored, err := wallet.Balance(userID)
			if err != nil {
				t.Fatalf("Balance: %v", err)
			}
			if stored != tt.wantBalance {
				t.Errorf("stored balance = %d, want %d", stored, tt.wantBalance)
			}
		})
	}
}

func TestWalletDebitUnknownUser(t *testing.T) {
	db := testDB(t)
	wallet := NewWalletService(db)

	if _, err := wallet.Debit(uuid.New(), 10); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Debit unknown user err = %v, want gorm.ErrRecordNotFound", err)
	}
}
