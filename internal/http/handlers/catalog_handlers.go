package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/domain"
)

// CatalogHandlers handles catalog HTTP requests
type CatalogHandlers struct {
	products domain.ProductRepository
	search   domain.SearchService
	views    domain.ViewCounter
	novelty  domain.NoveltyNotifier
	pageSize int
}

// NewCatalogHandlers creates new catalog handlers
func NewCatalogHandlers(products domain.ProductRepository, search domain.SearchService, views domain.ViewCounter, novelty domain.NoveltyNotifier, pageSize int) *CatalogHandlers {
	return &CatalogHandlers{
		products: products,
		search:   search,
		views:    views,
		novelty:  novelty,
		pageSize: pageSize,
	}
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	CategoryID  uint     `json:"category_id"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Depth       int      `json:"depth"`
	Weight      int      `json:"weight"`
	ImageURL    string   `json:"image_url"`
	Archived    bool     `json:"archived"`
}

// List handles the catalog index. A search parameter runs ranked full-text
// search; otherwise the listing supports tag filtering and pagination.
func (h *CatalogHandlers) List(c *gin.Context) {
	if search := c.Query("search"); search != "" {
		products, err := h.search.Search(c.Request.Context(), search)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"products": productsToJSON(products), "search": search}})
		return
	}

	limit := h.pageSize
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	tag := c.Query("tag")

	products, err := h.products.List(c.Request.Context(), tag, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"products": productsToJSON(products), "tag": tag}})
}

// Detail handles product detail requests and records the page view. Cache
// unavailability is tolerated: the page renders with no increment.
func (h *CatalogHandlers) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.products.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if err == domain.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find product"})
		return
	}

	views, err := h.views.RecordView(c.Request.Context(), product.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCacheUnavailable) {
			log.Printf("VIEW_COUNT_SKIPPED: product_id=%d error=%v", product.ID, err)
		} else {
			log.Printf("VIEW_COUNT_FAILED: product_id=%d error=%v", product.ID, err)
		}
		views = 0
	}

	auditLog(domain.NewAuditEvent(domain.ProductViewedEvent).WithProduct(product.ID).WithMetadata("page_views", views))

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"product":    productToJSON(product),
		"page_views": views,
	}})
}

// Create handles product creation and publishes the novelty event afterwards.
// The notification is an explicit step after a successful create, and its
// failure does not fail the request.
func (h *CatalogHandlers) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.toDomain()
	if err := h.products.Create(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	auditLog(domain.NewAuditEvent(domain.ProductCreatedEvent).WithProduct(product.ID))

	event, err := h.novelty.NotifyNewProduct(c.Request.Context(), product)
	if err != nil {
		auditLog(domain.NewAuditEvent(domain.NoveltySentEvent).WithProduct(product.ID).WithError(err))
	} else {
		auditLog(domain.NewAuditEvent(domain.NoveltySentEvent).
			WithProduct(product.ID).
			WithMetadata("event_id", event.ID).
			WithMetadata("recipients", event.Recipients))
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"message":    "Product created successfully",
		"product_id": product.ID,
	}})
}

// Update handles product updates
func (h *CatalogHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.products.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if err == domain.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find product"})
		return
	}

	product := req.toDomain()
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := h.products.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"message":    "Product updated successfully",
		"product_id": product.ID,
	}})
}

func (r *ProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Width:       r.Width,
		Height:      r.Height,
		Depth:       r.Depth,
		Weight:      r.Weight,
		ImageURL:    r.ImageURL,
		Archived:    r.Archived,
	}
}

func productToJSON(product *domain.Product) gin.H {
	return gin.H{
		"id":          product.ID,
		"category_id": product.CategoryID,
		"title":       product.Title,
		"description": product.Description,
		"tags":        product.Tags,
		"width":       product.Width,
		"height":      product.Height,
		"depth":       product.Depth,
		"weight":      product.Weight,
		"image_url":   product.ImageURL,
		"created_at":  product.CreatedAt,
		"archived":    product.Archived,
	}
}

func productsToJSON(products []domain.Product) []gin.H {
	out := make([]gin.H, 0, len(products))
	for i := range products {
		out = append(out, productToJSON(&products[i]))
	}
	return out
}
