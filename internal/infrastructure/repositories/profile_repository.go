package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/marketsvc/domain"
)

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *domain.Profile) error {
	dbProfile := r.domainToDB(profile)
	if err := r.db.WithContext(ctx).Create(dbProfile).Error; err != nil {
		return err
	}
	profile.ID = dbProfile.ID
	return nil
}

// FindByUser implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindByUser(ctx context.Context, userID uint) (*domain.Profile, error) {
	var dbProfile DBProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbProfile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProfile), nil
}

// Update implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(profile)).Error
}

func (r *ProfileRepositoryImpl) domainToDB(profile *domain.Profile) *DBProfile {
	return &DBProfile{
		ID:          profile.ID,
		UserID:      profile.UserID,
		PhoneNumber: profile.PhoneNumber,
		BirthDate:   profile.BirthDate,
		AvatarURL:   profile.AvatarURL,
	}
}

func (r *ProfileRepositoryImpl) dbToDomain(dbProfile *DBProfile) *domain.Profile {
	return &domain.Profile{
		ID:          dbProfile.ID,
		UserID:      dbProfile.UserID,
		PhoneNumber: dbProfile.PhoneNumber,
		BirthDate:   dbProfile.BirthDate,
		AvatarURL:   dbProfile.AvatarURL,
	}
}
