package domain

import "context"

// VerificationLogRepository defines verification attempt data access operations.
// Replace must behave as a single upsert keyed on user id so a concurrent reader
// never observes zero or two attempts for the same user.
type VerificationLogRepository interface {
	Replace(ctx context.Context, attempt *VerificationAttempt) error
	FindByUser(ctx context.Context, userID uint) (*VerificationAttempt, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

// ProfileRepository defines profile data access operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByUser(ctx context.Context, userID uint) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// ProductRepository defines product data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context, tag string, limit, offset int) ([]Product, error)
	FindMatching(ctx context.Context, terms []string) ([]Product, error)
}

// SubscriberRepository defines novelty subscriber data access operations
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *Subscriber) error
	ListAll(ctx context.Context) ([]Subscriber, error)
}

// SMSGateway defines the external SMS send capability. DeliveryCode and the raw
// provider response are opaque; transport errors propagate unmodified.
type SMSGateway interface {
	Send(ctx context.Context, phoneNumber, message string) (deliveryCode string, providerResponse string, err error)
}

// EmailSender defines the external e-mail send capability
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// VerificationService defines the phone verification workflow
type VerificationService interface {
	RequestVerification(ctx context.Context, userID uint) (*VerificationAttempt, error)
}

// SearchService defines weighted full-text product search
type SearchService interface {
	Search(ctx context.Context, text string) ([]Product, error)
}

// ViewCounter defines the ephemeral per-product hit counter
type ViewCounter interface {
	RecordView(ctx context.Context, productID uint) (int64, error)
}

// NoveltyNotifier announces newly created products to subscribers
type NoveltyNotifier interface {
	NotifyNewProduct(ctx context.Context, product *Product) (*NoveltyEvent, error)
}
