package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// NoveltyServiceImpl implements domain.NoveltyNotifier. It is invoked
// explicitly by the handler after a successful product create (no implicit
// post-save hook) and fans the novelty out to every subscriber.
type NoveltyServiceImpl struct {
	subscribers domain.SubscriberRepository
	mailer      domain.EmailSender
}

// NewNoveltyService creates a new novelty notifier
func NewNoveltyService(subscribers domain.SubscriberRepository, mailer domain.EmailSender) domain.NoveltyNotifier {
	return &NoveltyServiceImpl{subscribers: subscribers, mailer: mailer}
}

// NotifyNewProduct implements domain.NoveltyNotifier. Individual delivery
// failures are logged and skipped; the event reports how many subscribers
// were actually reached.
func (s *NoveltyServiceImpl) NotifyNewProduct(ctx context.Context, product *domain.Product) (*domain.NoveltyEvent, error) {
	subscribers, err := s.subscribers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	event := &domain.NoveltyEvent{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		Title:       product.Title,
		PublishedAt: time.Now().UTC(),
	}

	subject := "New product on the market"
	body := fmt.Sprintf("Check out the new product: %s", product.Title)
	for _, subscriber := range subscribers {
		if subscriber.Email == "" {
			continue
		}
		if err := s.mailer.SendEmail(subscriber.Email, subject, body); err != nil {
			log.Printf("NOVELTY_SEND_FAILED: event_id=%s user_id=%d error=%v", event.ID, subscriber.UserID, err)
			continue
		}
		event.Recipients++
	}

	return event, nil
}
