package mocks

import (
	"sync"

	"github.com/you/marketsvc/domain"
)

// SentEmail records one dispatched e-mail
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MockEmailSender implements domain.EmailSender for testing
type MockEmailSender struct {
	SendEmailFunc func(to, subject, body string) error

	mu   sync.Mutex
	Sent []SentEmail
}

// NewMockEmailSender creates a new MockEmailSender with default behaviors
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// SendEmail sends an e-mail. The default behavior records the message and succeeds.
func (m *MockEmailSender) SendEmail(to, subject, body string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()

	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.EmailSender = (*MockEmailSender)(nil)
