package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/marketsvc/domain"
)

// VerificationLogRepositoryImpl implements domain.VerificationLogRepository using GORM
type VerificationLogRepositoryImpl struct {
	db *gorm.DB
}

// NewVerificationLogRepository creates a new verification log repository
func NewVerificationLogRepository(db *gorm.DB) domain.VerificationLogRepository {
	return &VerificationLogRepositoryImpl{db: db}
}

// Replace implements domain.VerificationLogRepository. A single upsert keyed on
// user_id supersedes any prior attempt; a concurrent reader never sees zero or
// two rows for the same user.
func (r *VerificationLogRepositoryImpl) Replace(ctx context.Context, attempt *domain.VerificationAttempt) error {
	dbAttempt := &DBVerificationAttempt{
		UserID:           attempt.UserID,
		Code:             attempt.Code,
		ProviderResponse: attempt.ProviderResponse,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "provider_response", "updated_at"}),
	}).Create(dbAttempt).Error
	if err != nil {
		return err
	}

	attempt.ID = dbAttempt.ID
	attempt.CreatedAt = dbAttempt.CreatedAt
	attempt.UpdatedAt = dbAttempt.UpdatedAt
	return nil
}

// FindByUser implements domain.VerificationLogRepository
func (r *VerificationLogRepositoryImpl) FindByUser(ctx context.Context, userID uint) (*domain.VerificationAttempt, error) {
	var dbAttempt DBVerificationAttempt
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbAttempt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttemptNotFound
		}
		return nil, err
	}

	return &domain.VerificationAttempt{
		ID:               dbAttempt.ID,
		UserID:           dbAttempt.UserID,
		Code:             dbAttempt.Code,
		ProviderResponse: dbAttempt.ProviderResponse,
		CreatedAt:        dbAttempt.CreatedAt,
		UpdatedAt:        dbAttempt.UpdatedAt,
	}, nil
}

// DeleteByUser implements domain.VerificationLogRepository
func (r *VerificationLogRepositoryImpl) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBVerificationAttempt{}).Error
}
