package mocks

import (
	"context"
	"sync"

	"github.com/you/marketsvc/domain"
)

// SentSMS records one dispatched message
type SentSMS struct {
	To      string
	Message string
}

// MockSMSGateway implements domain.SMSGateway for testing
type MockSMSGateway struct {
	SendFunc func(ctx context.Context, phoneNumber, message string) (string, string, error)

	mu   sync.Mutex
	Sent []SentSMS
}

// NewMockSMSGateway creates a new MockSMSGateway with default behaviors
func NewMockSMSGateway() *MockSMSGateway {
	return &MockSMSGateway{}
}

// Send dispatches an SMS. The default behavior records the message and
// succeeds with a static provider response.
func (m *MockSMSGateway) Send(ctx context.Context, phoneNumber, message string) (string, string, error) {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentSMS{To: phoneNumber, Message: message})
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, phoneNumber, message)
	}
	return "mock-sid", `{"status":"queued"}`, nil
}

// Compile-time interface compliance verification
var _ domain.SMSGateway = (*MockSMSGateway)(nil)
