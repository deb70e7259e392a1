package mocks

import (
	"context"
	"sync"

	"github.com/you/marketsvc/domain"
)

// MockProductRepository implements domain.ProductRepository for testing. The
// default behavior keeps products in memory ordered by id.
type MockProductRepository struct {
	CreateFunc       func(ctx context.Context, product *domain.Product) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Product, error)
	UpdateFunc       func(ctx context.Context, product *domain.Product) error
	ListFunc         func(ctx context.Context, tag string, limit, offset int) ([]domain.Product, error)
	FindMatchingFunc func(ctx context.Context, terms []string) ([]domain.Product, error)

	mu       sync.Mutex
	products []domain.Product
	nextID   uint
}

// NewMockProductRepository creates a new MockProductRepository
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{nextID: 1}
}

// AddProducts seeds products into the in-memory store
func (m *MockProductRepository) AddProducts(products ...domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, product := range products {
		if product.ID == 0 {
			product.ID = m.nextID
		}
		if product.ID >= m.nextID {
			m.nextID = product.ID + 1
		}
		m.products = append(m.products, product)
	}
}

// Create stores a new product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = m.nextID
	m.nextID++
	m.products = append(m.products, *product)
	return nil
}

// FindByID returns the product with the given id
func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, product := range m.products {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Update replaces the stored product
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == product.ID {
			m.products[i] = *product
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// List returns all stored products
func (m *MockProductRepository) List(ctx context.Context, tag string, limit, offset int) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tag, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Product, len(m.products))
	copy(result, m.products)
	return result, nil
}

// FindMatching returns every stored product, leaving ranking to the caller
func (m *MockProductRepository) FindMatching(ctx context.Context, terms []string) ([]domain.Product, error) {
	if m.FindMatchingFunc != nil {
		return m.FindMatchingFunc(ctx, terms)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Product, len(m.products))
	copy(result, m.products)
	return result, nil
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
