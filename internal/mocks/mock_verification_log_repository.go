package mocks

import (
	"context"
	"sync"

	"github.com/you/marketsvc/domain"
)

// MockVerificationLogRepository implements domain.VerificationLogRepository
// for testing. The default behavior keeps one attempt per user in memory,
// mirroring the upsert contract of the real store.
type MockVerificationLogRepository struct {
	ReplaceFunc      func(ctx context.Context, attempt *domain.VerificationAttempt) error
	FindByUserFunc   func(ctx context.Context, userID uint) (*domain.VerificationAttempt, error)
	DeleteByUserFunc func(ctx context.Context, userID uint) error

	mu       sync.Mutex
	attempts map[uint]*domain.VerificationAttempt
	nextID   uint
}

// NewMockVerificationLogRepository creates a new MockVerificationLogRepository
func NewMockVerificationLogRepository() *MockVerificationLogRepository {
	return &MockVerificationLogRepository{
		attempts: make(map[uint]*domain.VerificationAttempt),
		nextID:   1,
	}
}

// Replace stores the attempt, superseding any prior one for the same user
func (m *MockVerificationLogRepository) Replace(ctx context.Context, attempt *domain.VerificationAttempt) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, attempt)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.attempts[attempt.UserID]; ok {
		attempt.ID = existing.ID
	} else {
		attempt.ID = m.nextID
		m.nextID++
	}
	stored := *attempt
	m.attempts[attempt.UserID] = &stored
	return nil
}

// FindByUser returns the stored attempt for the user
func (m *MockVerificationLogRepository) FindByUser(ctx context.Context, userID uint) (*domain.VerificationAttempt, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	attempt, ok := m.attempts[userID]
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	found := *attempt
	return &found, nil
}

// DeleteByUser removes the stored attempt for the user
func (m *MockVerificationLogRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, userID)
	return nil
}

// Count returns the number of stored attempts
func (m *MockVerificationLogRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.attempts)
}

// Compile-time interface compliance verification
var _ domain.VerificationLogRepository = (*MockVerificationLogRepository)(nil)
