package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/you/marketsvc/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&DBCategory{},
		&DBSeller{},
		&DBTag{},
		&DBProduct{},
		&DBProductInstance{},
		&DBProfile{},
		&DBSubscriber{},
		&DBVerificationAttempt{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func countAttempts(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&DBVerificationAttempt{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count attempts: %v", err)
	}
	return count
}

func TestVerificationLogRepositoryImpl_Replace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationLogRepository(db)
	ctx := context.Background()

	first := &domain.VerificationAttempt{UserID: 1, Code: "0007", ProviderResponse: `{"status":"0"}`}
	if err := repo.Replace(ctx, first); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected attempt id to be populated")
	}
	if got := countAttempts(t, db, 1); got != 1 {
		t.Fatalf("expected 1 attempt, got %d", got)
	}

	second := &domain.VerificationAttempt{UserID: 1, Code: "4242", ProviderResponse: `{"status":"1"}`}
	if err := repo.Replace(ctx, second); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}

	// Superseding must never leave zero or two rows
	if got := countAttempts(t, db, 1); got != 1 {
		t.Fatalf("expected exactly 1 attempt after supersede, got %d", got)
	}

	stored, err := repo.FindByUser(ctx, 1)
	if err != nil {
		t.Fatalf("FindByUser failed: %v", err)
	}
	if stored.Code != "4242" {
		t.Errorf("expected latest code 4242, got %s", stored.Code)
	}
	if stored.ProviderResponse != `{"status":"1"}` {
		t.Errorf("expected latest provider response, got %s", stored.ProviderResponse)
	}
}

func TestVerificationLogRepositoryImpl_ReplaceIsPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationLogRepository(db)
	ctx := context.Background()

	if err := repo.Replace(ctx, &domain.VerificationAttempt{UserID: 1, Code: "1111"}); err != nil {
		t.Fatalf("replace for user 1 failed: %v", err)
	}
	if err := repo.Replace(ctx, &domain.VerificationAttempt{UserID: 2, Code: "2222"}); err != nil {
		t.Fatalf("replace for user 2 failed: %v", err)
	}

	if got := countAttempts(t, db, 1); got != 1 {
		t.Errorf("expected 1 attempt for user 1, got %d", got)
	}
	if got := countAttempts(t, db, 2); got != 1 {
		t.Errorf("expected 1 attempt for user 2, got %d", got)
	}

	stored, err := repo.FindByUser(ctx, 2)
	if err != nil {
		t.Fatalf("FindByUser failed: %v", err)
	}
	if stored.Code != "2222" {
		t.Errorf("expected code 2222 for user 2, got %s", stored.Code)
	}
}

func TestVerificationLogRepositoryImpl_FindByUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationLogRepository(db)

	_, err := repo.FindByUser(context.Background(), 99)
	if err != domain.ErrAttemptNotFound {
		t.Errorf("expected ErrAttemptNotFound, got %v", err)
	}
}

func TestVerificationLogRepositoryImpl_DeleteByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationLogRepository(db)
	ctx := context.Background()

	if err := repo.Replace(ctx, &domain.VerificationAttempt{UserID: 1, Code: "1234"}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if err := repo.DeleteByUser(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByUser(ctx, 1); err != domain.ErrAttemptNotFound {
		t.Errorf("expected ErrAttemptNotFound after delete, got %v", err)
	}

	// Deleting an absent attempt is a no-op
	if err := repo.DeleteByUser(ctx, 1); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}
