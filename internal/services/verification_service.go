package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/you/marketsvc/domain"
)

const (
	codeLength                  = 4
	verificationMessageTemplate = "Your verification code: %s"
)

// VerificationServiceImpl implements domain.VerificationService
type VerificationServiceImpl struct {
	gateway  domain.SMSGateway
	profiles domain.ProfileRepository
	logs     domain.VerificationLogRepository
	config   VerificationConfig
}

type VerificationConfig struct {
	SMSTimeout time.Duration
}

// NewVerificationService creates a new phone verification service
func NewVerificationService(gateway domain.SMSGateway, profiles domain.ProfileRepository, logs domain.VerificationLogRepository, config VerificationConfig) domain.VerificationService {
	return &VerificationServiceImpl{
		gateway:  gateway,
		profiles: profiles,
		logs:     logs,
		config:   config,
	}
}

// RequestVerification implements domain.VerificationService. It generates a
// one-time code, dispatches it over SMS and records the attempt, superseding
// any prior attempt for the user. A provider-side delivery status inside the
// response is not interpreted; only a transport error counts as failure, and
// then nothing is recorded.
func (s *VerificationServiceImpl) RequestVerification(ctx context.Context, userID uint) (*domain.VerificationAttempt, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.PhoneNumber == "" {
		return nil, domain.ErrNoPhoneNumber
	}

	code := GenerateCode()
	message := fmt.Sprintf(verificationMessageTemplate, code)

	sendCtx, cancel := context.WithTimeout(ctx, s.config.SMSTimeout)
	defer cancel()
	_, providerResponse, err := s.sendBounded(sendCtx, profile.PhoneNumber, message)
	if err != nil {
		return nil, fmt.Errorf("sms dispatch failed: %w", err)
	}

	attempt := &domain.VerificationAttempt{
		UserID:           userID,
		Code:             code,
		ProviderResponse: providerResponse,
	}
	if err := s.logs.Replace(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to record verification attempt: %w", err)
	}

	return attempt, nil
}

// sendBounded runs the gateway call under the context deadline. On timeout the
// error surfaces as a gateway failure and no attempt is recorded.
func (s *VerificationServiceImpl) sendBounded(ctx context.Context, phone, message string) (string, string, error) {
	type sendResult struct {
		code     string
		response string
		err      error
	}

	ch := make(chan sendResult, 1)
	go func() {
		code, response, err := s.gateway.Send(ctx, phone, message)
		ch <- sendResult{code: code, response: response, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, res.err)
		}
		return res.code, res.response, nil
	}
}

// GenerateCode returns a random 4-digit verification code, zero-padded on the
// left, uniform over 0000-9999.
func GenerateCode() string {
	digits := make([]byte, codeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand failure is unrecoverable
			panic(err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}
