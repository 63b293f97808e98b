// internal/otp/service.go
// One-time verification codes kept in the ephemeral TTL store. Expiry is
// enforced by the store itself; codes are bcrypt-hashed before storage so a
// leaked cache dump does not expose live codes.

package otp

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusmatch/campusmatch-backend/internal/cache"
	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
)

// Service defines the OTP service interface
type Service interface {
	GenerateOTP(ctx context.Context, req *SendOTPRequest) (*OTPResponse, error)
	VerifyOTP(ctx context.Context, req *VerifyOTPRequest) error
}

type service struct {
	store         cache.Store
	emailProvider EmailProvider
	smsProvider   SMSProvider
	config        *Config
	now           func() time.Time
}

// NewService creates a new OTP service
func NewService(store cache.Store, emailProvider EmailProvider, smsProvider SMSProvider, config *Config) Service {
	if config == nil {
		config = &Config{
			Length:       6,
			Expiry:       10 * time.Minute,
			MaxAttempts:  5,
			ResendMax:    3,
			ResendWindow: time.Hour,
		}
	}

	return &service{
		store:         store,
		emailProvider: emailProvider,
		smsProvider:   smsProvider,
		config:        config,
		now:           time.Now,
	}
}

// GenerateOTP generates, stores, and delivers a new code. A new code
// replaces any outstanding one for the same recipient and type.
func (s *service) GenerateOTP(ctx context.Context, req *SendOTPRequest) (*OTPResponse, error) {
	recipient := req.Email
	if req.Method == DeliveryMethodSMS {
		recipient = req.Phone
	}
	if recipient == "" {
		return nil, apperr.Validation("recipient is required")
	}

	sends, err := s.store.Increment(ctx, resendKey(req.Type, recipient), s.config.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to check resend limit: %w", err)
	}
	if sends > int64(s.config.ResendMax) {
		return nil, apperr.PolicyViolation("too many codes requested, please try again later")
	}

	code, err := generateCode(s.config.Length)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash code: %w", err)
	}

	rec := &record{
		CodeHash:  string(hash),
		Type:      req.Type,
		Method:    req.Method,
		Recipient: recipient,
		ExpiresAt: s.now().Add(s.config.Expiry),
	}
	if err := s.putRecord(ctx, rec); err != nil {
		return nil, err
	}

	if err := s.deliver(ctx, recipient, code, req.Method); err != nil {
		return nil, fmt.Errorf("failed to send code: %w", err)
	}

	return &OTPResponse{
		Success:   true,
		Recipient: recipient,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// VerifyOTP checks a submitted code. The code is consumed on success;
// failed attempts are counted and the code is invalidated once the attempt
// cap is reached.
func (s *service) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) error {
	recipient := req.Email
	if recipient == "" {
		recipient = req.Phone
	}
	if recipient == "" {
		return apperr.Validation("recipient is required")
	}

	key := codeKey(req.Type, recipient)

	raw, err := s.store.Get(ctx, key)
	if err == cache.ErrNotFound {
		return apperr.NotFound("no active code for this recipient")
	}
	if err != nil {
		return fmt.Errorf("failed to load code: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return fmt.Errorf("failed to decode code record: %w", err)
	}

	if rec.Attempts >= s.config.MaxAttempts {
		return apperr.PolicyViolation("maximum verification attempts exceeded")
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(req.Code)) != nil {
		rec.Attempts++
		if putErr := s.putRecord(ctx, &rec); putErr != nil {
			return putErr
		}
		return apperr.Validation("invalid verification code")
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to consume code: %w", err)
	}

	return nil
}

func (s *service) putRecord(ctx context.Context, rec *record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode code record: %w", err)
	}

	ttl := rec.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return apperr.NotFound("no active code for this recipient")
	}

	if err := s.store.Put(ctx, codeKey(rec.Type, rec.Recipient), string(payload), ttl); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}
	return nil
}

func (s *service) deliver(ctx context.Context, recipient, code string, method DeliveryMethod) error {
	expiresIn := int(s.config.Expiry.Minutes())

	if method == DeliveryMethodSMS {
		return s.smsProvider.SendSMS(ctx, &SMSMessage{
			To:      recipient,
			Message: fmt.Sprintf("Your CampusMatch verification code is %s. It expires in %d minutes.", code, expiresIn),
		})
	}

	return s.emailProvider.SendEmail(ctx, &EmailMessage{
		To:        recipient,
		Subject:   "Your CampusMatch verification code",
		Code:      code,
		ExpiresIn: expiresIn,
	})
}

// generateCode produces a zero-padded numeric code using crypto/rand
func generateCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

func codeKey(otpType OTPType, recipient string) string {
	return fmt.Sprintf("otp:%s:%s", otpType, recipient)
}

func resendKey(otpType OTPType, recipient string) string {
	return fmt.Sprintf("otp:resend:%s:%s", otpType, recipient)
}
