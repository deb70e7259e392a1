package mocks

import (
	"context"

	"github.com/you/marketsvc/domain"
)

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	RequestVerificationFunc func(ctx context.Context, userID uint) (*domain.VerificationAttempt, error)
}

// NewMockVerificationService creates a new MockVerificationService
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// RequestVerification runs the verification workflow
func (m *MockVerificationService) RequestVerification(ctx context.Context, userID uint) (*domain.VerificationAttempt, error) {
	if m.RequestVerificationFunc != nil {
		return m.RequestVerificationFunc(ctx, userID)
	}
	return &domain.VerificationAttempt{UserID: userID, Code: "0000"}, nil
}

// MockSearchService implements domain.SearchService for testing
type MockSearchService struct {
	SearchFunc func(ctx context.Context, text string) ([]domain.Product, error)
}

// NewMockSearchService creates a new MockSearchService
func NewMockSearchService() *MockSearchService {
	return &MockSearchService{}
}

// Search runs a product search
func (m *MockSearchService) Search(ctx context.Context, text string) ([]domain.Product, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, text)
	}
	return nil, nil
}

// MockViewCounter implements domain.ViewCounter for testing
type MockViewCounter struct {
	RecordViewFunc func(ctx context.Context, productID uint) (int64, error)

	Counts map[uint]int64
}

// NewMockViewCounter creates a new MockViewCounter
func NewMockViewCounter() *MockViewCounter {
	return &MockViewCounter{Counts: make(map[uint]int64)}
}

// RecordView increments the in-memory counter
func (m *MockViewCounter) RecordView(ctx context.Context, productID uint) (int64, error) {
	if m.RecordViewFunc != nil {
		return m.RecordViewFunc(ctx, productID)
	}
	m.Counts[productID]++
	return m.Counts[productID], nil
}

// MockNoveltyNotifier implements domain.NoveltyNotifier for testing
type MockNoveltyNotifier struct {
	NotifyNewProductFunc func(ctx context.Context, product *domain.Product) (*domain.NoveltyEvent, error)

	Notified []uint
}

// NewMockNoveltyNotifier creates a new MockNoveltyNotifier
func NewMockNoveltyNotifier() *MockNoveltyNotifier {
	return &MockNoveltyNotifier{}
}

// NotifyNewProduct records the notified product id
func (m *MockNoveltyNotifier) NotifyNewProduct(ctx context.Context, product *domain.Product) (*domain.NoveltyEvent, error) {
	m.Notified = append(m.Notified, product.ID)
	if m.NotifyNewProductFunc != nil {
		return m.NotifyNewProductFunc(ctx, product)
	}
	return &domain.NoveltyEvent{ID: "mock-event", ProductID: product.ID, Title: product.Title}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.VerificationService = (*MockVerificationService)(nil)
	_ domain.SearchService       = (*MockSearchService)(nil)
	_ domain.ViewCounter         = (*MockViewCounter)(nil)
	_ domain.NoveltyNotifier     = (*MockNoveltyNotifier)(nil)
)
