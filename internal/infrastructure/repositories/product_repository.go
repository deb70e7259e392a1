package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/you/marketsvc/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	tags, err := r.findOrCreateTags(ctx, product.Tags)
	if err != nil {
		return err
	}

	dbProduct := r.domainToDB(product)
	dbProduct.Tags = tags
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return err
	}

	product.ID = dbProduct.ID
	product.CreatedAt = dbProduct.CreatedAt
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Preload("Tags").Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	tags, err := r.findOrCreateTags(ctx, product.Tags)
	if err != nil {
		return err
	}

	dbProduct := r.domainToDB(product)
	if err := r.db.WithContext(ctx).Omit("Tags", "created_at").Save(dbProduct).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(dbProduct).Association("Tags").Replace(tags)
}

// List implements domain.ProductRepository. A non-empty tag filters by tag
// name; limit <= 0 returns the whole catalog.
func (r *ProductRepositoryImpl) List(ctx context.Context, tag string, limit, offset int) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&DBProduct{}).Preload("Tags").Order("products.id ASC")
	if tag != "" {
		q = q.Joins("JOIN product_tags ON product_tags.product_id = products.id").
			Joins("JOIN tags ON tags.id = product_tags.tag_id").
			Where("tags.tag_name = ?", tag)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var dbProducts []DBProduct
	if err := q.Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbProducts), nil
}

// FindMatching implements domain.ProductRepository. It returns candidates
// containing any of the query terms in title or description; ranking is done
// by the search service.
func (r *ProductRepositoryImpl) FindMatching(ctx context.Context, terms []string) ([]domain.Product, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(terms))
	args := make([]interface{}, 0, len(terms)*2)
	for _, term := range terms {
		conds = append(conds, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		pattern := "%" + strings.ToLower(term) + "%"
		args = append(args, pattern, pattern)
	}

	var dbProducts []DBProduct
	err := r.db.WithContext(ctx).Model(&DBProduct{}).Preload("Tags").
		Where(strings.Join(conds, " OR "), args...).
		Order("id ASC").
		Find(&dbProducts).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbProducts), nil
}

// findOrCreateTags resolves tag names to tag rows, creating missing ones
func (r *ProductRepositoryImpl) findOrCreateTags(ctx context.Context, names []string) ([]DBTag, error) {
	tags := make([]DBTag, 0, len(names))
	for _, name := range names {
		var tag DBTag
		err := r.db.WithContext(ctx).Where(DBTag{TagName: name}).FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// domainToDB converts domain product to database product
func (r *ProductRepositoryImpl) domainToDB(product *domain.Product) *DBProduct {
	return &DBProduct{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Title:       product.Title,
		Description: product.Description,
		Width:       product.Width,
		Height:      product.Height,
		Depth:       product.Depth,
		Weight:      product.Weight,
		ImageURL:    product.ImageURL,
		Archived:    product.Archived,
	}
}

// dbToDomain converts database product to domain product
func (r *ProductRepositoryImpl) dbToDomain(dbProduct *DBProduct) *domain.Product {
	tags := make([]string, 0, len(dbProduct.Tags))
	for _, tag := range dbProduct.Tags {
		tags = append(tags, tag.TagName)
	}

	return &domain.Product{
		ID:          dbProduct.ID,
		CategoryID:  dbProduct.CategoryID,
		Title:       dbProduct.Title,
		Description: dbProduct.Description,
		Tags:        tags,
		Width:       dbProduct.Width,
		Height:      dbProduct.Height,
		Depth:       dbProduct.Depth,
		Weight:      dbProduct.Weight,
		ImageURL:    dbProduct.ImageURL,
		CreatedAt:   dbProduct.CreatedAt,
		Archived:    dbProduct.Archived,
	}
}

func (r *ProductRepositoryImpl) dbToDomainSlice(dbProducts []DBProduct) []domain.Product {
	products := make([]domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, *r.dbToDomain(&dbProducts[i]))
	}
	return products
}
