package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/mocks"
)

func TestNoveltyServiceImpl_NotifyNewProduct(t *testing.T) {
	subscribers := mocks.NewMockSubscriberRepository()
	subscribers.AddSubscribers(
		domain.Subscriber{UserID: 1, Email: "one@example.com"},
		domain.Subscriber{UserID: 2, Email: "two@example.com"},
		domain.Subscriber{UserID: 3, Email: ""},
	)
	mailer := mocks.NewMockEmailSender()
	svc := NewNoveltyService(subscribers, mailer)

	product := &domain.Product{ID: 10, Title: "Desk lamp"}
	event, err := svc.NotifyNewProduct(context.Background(), product)
	if err != nil {
		t.Fatalf("NotifyNewProduct failed: %v", err)
	}

	if event.ID == "" {
		t.Error("expected event id to be set")
	}
	if event.ProductID != 10 {
		t.Errorf("expected product id 10, got %d", event.ProductID)
	}
	if event.Recipients != 2 {
		t.Errorf("expected 2 recipients (blank e-mail skipped), got %d", event.Recipients)
	}
	if len(mailer.Sent) != 2 {
		t.Fatalf("expected 2 e-mails, got %d", len(mailer.Sent))
	}
	if !strings.Contains(mailer.Sent[0].Body, "Desk lamp") {
		t.Errorf("expected body to mention the product, got %q", mailer.Sent[0].Body)
	}
}

func TestNoveltyServiceImpl_DeliveryFailureSkipped(t *testing.T) {
	subscribers := mocks.NewMockSubscriberRepository()
	subscribers.AddSubscribers(
		domain.Subscriber{UserID: 1, Email: "bad@example.com"},
		domain.Subscriber{UserID: 2, Email: "good@example.com"},
	)
	mailer := mocks.NewMockEmailSender()
	mailer.SendEmailFunc = func(to, subject, body string) error {
		if to == "bad@example.com" {
			return errors.New("mailbox unavailable")
		}
		return nil
	}
	svc := NewNoveltyService(subscribers, mailer)

	event, err := svc.NotifyNewProduct(context.Background(), &domain.Product{ID: 1, Title: "Chair"})
	if err != nil {
		t.Fatalf("NotifyNewProduct failed: %v", err)
	}
	if event.Recipients != 1 {
		t.Errorf("expected 1 successful recipient, got %d", event.Recipients)
	}
}

func TestNoveltyServiceImpl_ListFailure(t *testing.T) {
	subscribers := mocks.NewMockSubscriberRepository()
	subscribers.ListAllFunc = func(ctx context.Context) ([]domain.Subscriber, error) {
		return nil, errors.New("connection reset")
	}
	svc := NewNoveltyService(subscribers, mocks.NewMockEmailSender())

	if _, err := svc.NotifyNewProduct(context.Background(), &domain.Product{ID: 1}); err == nil {
		t.Fatal("expected error when subscriber listing fails")
	}
}
