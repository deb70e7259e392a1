package domain

import "time"

// Category groups products in the catalog
type Category struct {
	ID    uint
	Title string
}

// Seller represents a party offering product instances for sale
type Seller struct {
	ID        uint
	FirstName string
	LastName  string
	Address   string
	Website   string
}

// Product represents a catalog entry searchable by title and description
type Product struct {
	ID          uint
	CategoryID  uint
	Title       string
	Description string
	Tags        []string
	Width       int
	Height      int
	Depth       int
	Weight      int
	ImageURL    string
	CreatedAt   time.Time
	Archived    bool
}

// ProductInstance is a concrete offer of a product by a seller
type ProductInstance struct {
	ID        uint
	ProductID uint
	SellerID  uint
	Price     float64
	Amount    int
}

// Profile holds the marketplace-owned attributes of an externally managed user
type Profile struct {
	ID          uint
	UserID      uint
	PhoneNumber string
	BirthDate   time.Time
	AvatarURL   string
}

// Subscriber is a user who opted into novelty notifications
type Subscriber struct {
	ID     uint
	UserID uint
	Email  string
}

// VerificationAttempt is one issued verification code plus the raw gateway
// response. At most one lives per user; a new request supersedes the old one.
type VerificationAttempt struct {
	ID               uint
	UserID           uint
	Code             string
	ProviderResponse string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SearchResult pairs a product with its relevance score
type SearchResult struct {
	Product Product
	Score   float64
}
