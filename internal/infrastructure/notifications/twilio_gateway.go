package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/you/marketsvc/domain"
)

var (
	_ domain.SMSGateway  = (*TwilioGateway)(nil)
	_ domain.EmailSender = (*TwilioGateway)(nil)
)

// TwilioGateway sends verification SMS through the Twilio REST API. It also
// carries the subscriber e-mail capability used by the novelty notifier.
type TwilioGateway struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioGateway creates a new Twilio SMS gateway
func NewTwilioGateway(accountSID, authToken, fromNumber string) *TwilioGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioGateway{
		client:     client,
		fromNumber: fromNumber,
	}
}

// Send dispatches an SMS and returns the provider message id together with the
// raw provider response. Transport errors propagate to the caller unmodified.
func (t *TwilioGateway) Send(ctx context.Context, to, message string) (string, string, error) {
	// Without a sender number the gateway runs in dry-run mode
	if t.fromNumber == "" {
		log.Printf("[MOCK SMS] To: %s, Message: %s", to, message)
		return "mock", "{}", nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to send SMS: %w", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode provider response: %w", err)
	}

	var sid string
	if resp.Sid != nil {
		sid = *resp.Sid
	}

	return sid, string(raw), nil
}

// SendEmail implements the novelty e-mail capability. Delivery is delegated to
// an external mailer in production; here it is logged.
func (t *TwilioGateway) SendEmail(to, subject, body string) error {
	log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
	return nil
}
