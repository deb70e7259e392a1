package mocks

import (
	"context"
	"sync"

	"github.com/you/marketsvc/domain"
)

// MockProfileRepository implements domain.ProfileRepository for testing
type MockProfileRepository struct {
	CreateFunc     func(ctx context.Context, profile *domain.Profile) error
	FindByUserFunc func(ctx context.Context, userID uint) (*domain.Profile, error)
	UpdateFunc     func(ctx context.Context, profile *domain.Profile) error

	mu       sync.Mutex
	profiles map[uint]*domain.Profile
	nextID   uint
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uint]*domain.Profile),
		nextID:   1,
	}
}

// AddProfile seeds a profile into the in-memory store
func (m *MockProfileRepository) AddProfile(profile *domain.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if profile.ID == 0 {
		profile.ID = m.nextID
		m.nextID++
	}
	m.profiles[profile.UserID] = profile
}

// Create stores a new profile
func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	m.AddProfile(profile)
	return nil
}

// FindByUser returns the profile for the user
func (m *MockProfileRepository) FindByUser(ctx context.Context, userID uint) (*domain.Profile, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	found := *profile
	return &found, nil
}

// Update replaces the stored profile
func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *profile
	m.profiles[profile.UserID] = &stored
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProfileRepository = (*MockProfileRepository)(nil)
