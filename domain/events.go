package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Verification events
	VerificationRequestedEvent AuditEventType = "VERIFICATION_REQUESTED"
	VerificationFailedEvent    AuditEventType = "VERIFICATION_FAILED"

	// Catalog events
	ProductCreatedEvent AuditEventType = "PRODUCT_CREATED"
	ProductViewedEvent  AuditEventType = "PRODUCT_VIEWED"
	NoveltySentEvent    AuditEventType = "NOVELTY_SENT"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType         `json:"event_type"`
	UserID    uint                   `json:"user_id,omitempty"`
	ProductID uint                   `json:"product_id,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg  string                 `json:"error_msg,omitempty"`
	Success   bool                   `json:"success"`
}

// NoveltyEvent is published after a product is created so the notification
// side can fan it out to subscribers.
type NoveltyEvent struct {
	ID          string    `json:"id"`
	ProductID   uint      `json:"product_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Recipients  int       `json:"recipients"`
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithUser sets the user field
func (e *AuditEvent) WithUser(userID uint) *AuditEvent {
	e.UserID = userID
	return e
}

// WithProduct sets the product field
func (e *AuditEvent) WithProduct(productID uint) *AuditEvent {
	e.ProductID = productID
	return e
}

// WithPhone sets the phone field
func (e *AuditEvent) WithPhone(phone string) *AuditEvent {
	e.Phone = phone
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	e.Metadata[key] = value
	return e
}
