package mocks

import (
	"context"
	"sync"

	"github.com/you/marketsvc/domain"
)

// MockSubscriberRepository implements domain.SubscriberRepository for testing
type MockSubscriberRepository struct {
	CreateFunc  func(ctx context.Context, subscriber *domain.Subscriber) error
	ListAllFunc func(ctx context.Context) ([]domain.Subscriber, error)

	mu          sync.Mutex
	subscribers []domain.Subscriber
	nextID      uint
}

// NewMockSubscriberRepository creates a new MockSubscriberRepository
func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{nextID: 1}
}

// AddSubscribers seeds subscribers into the in-memory store
func (m *MockSubscriberRepository) AddSubscribers(subscribers ...domain.Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, subscriber := range subscribers {
		if subscriber.ID == 0 {
			subscriber.ID = m.nextID
			m.nextID++
		}
		m.subscribers = append(m.subscribers, subscriber)
	}
}

// Create stores a new subscriber
func (m *MockSubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, subscriber)
	}
	m.AddSubscribers(*subscriber)
	return nil
}

// ListAll returns every stored subscriber
func (m *MockSubscriberRepository) ListAll(ctx context.Context) ([]domain.Subscriber, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Subscriber, len(m.subscribers))
	copy(result, m.subscribers)
	return result, nil
}

// Compile-time interface compliance verification
var _ domain.SubscriberRepository = (*MockSubscriberRepository)(nil)
