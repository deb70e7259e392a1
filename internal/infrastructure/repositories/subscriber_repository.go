package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/marketsvc/domain"
)

// SubscriberRepositoryImpl implements domain.SubscriberRepository using GORM
type SubscriberRepositoryImpl struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db *gorm.DB) domain.SubscriberRepository {
	return &SubscriberRepositoryImpl{db: db}
}

// Create implements domain.SubscriberRepository
func (r *SubscriberRepositoryImpl) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	dbSubscriber := &DBSubscriber{UserID: subscriber.UserID, Email: subscriber.Email}
	if err := r.db.WithContext(ctx).Create(dbSubscriber).Error; err != nil {
		return err
	}
	subscriber.ID = dbSubscriber.ID
	return nil
}

// ListAll implements domain.SubscriberRepository
func (r *SubscriberRepositoryImpl) ListAll(ctx context.Context) ([]domain.Subscriber, error) {
	var dbSubscribers []DBSubscriber
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dbSubscribers).Error; err != nil {
		return nil, err
	}

	subscribers := make([]domain.Subscriber, 0, len(dbSubscribers))
	for _, s := range dbSubscribers {
		subscribers = append(subscribers, domain.Subscriber{ID: s.ID, UserID: s.UserID, Email: s.Email})
	}
	return subscribers, nil
}
