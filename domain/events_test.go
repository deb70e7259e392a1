package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewAuditEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewAuditEvent(VerificationRequestedEvent)

	if event.EventType != VerificationRequestedEvent {
		t.Errorf("expected event type %s, got %s", VerificationRequestedEvent, event.EventType)
	}
	if !event.Success {
		t.Error("expected new event to default to success")
	}
	if event.Timestamp.Before(before) {
		t.Error("expected timestamp to be populated")
	}
	if event.Metadata == nil {
		t.Error("expected metadata map to be initialized")
	}
}

func TestAuditEvent_Builders(t *testing.T) {
	event := NewAuditEvent(ProductViewedEvent).
		WithUser(7).
		WithProduct(42).
		WithPhone("+1234567890").
		WithMetadata("page_views", int64(3))

	if event.UserID != 7 {
		t.Errorf("expected user 7, got %d", event.UserID)
	}
	if event.ProductID != 42 {
		t.Errorf("expected product 42, got %d", event.ProductID)
	}
	if event.Phone != "+1234567890" {
		t.Errorf("expected phone to be set, got %s", event.Phone)
	}
	if event.Metadata["page_views"] != int64(3) {
		t.Errorf("expected metadata page_views=3, got %v", event.Metadata["page_views"])
	}
	if !event.Success {
		t.Error("expected builders to preserve success")
	}
}

func TestAuditEvent_WithError(t *testing.T) {
	event := NewAuditEvent(VerificationFailedEvent).WithError(errors.New("gateway down"))

	if event.Success {
		t.Error("expected WithError to mark the event failed")
	}
	if event.ErrorMsg != "gateway down" {
		t.Errorf("expected error message to be recorded, got %q", event.ErrorMsg)
	}

	nilErr := NewAuditEvent(VerificationFailedEvent).WithError(nil)
	if nilErr.Success {
		t.Error("expected WithError(nil) to still mark failure")
	}
	if nilErr.ErrorMsg != "" {
		t.Errorf("expected empty error message, got %q", nilErr.ErrorMsg)
	}
}
