// internal/otp/models.go

package otp

import "time"

// OTPType represents different OTP use cases
type OTPType string

const (
	OTPTypeSignup        OTPType = "signup"
	OTPTypeSignin        OTPType = "signin"
	OTPTypePasswordReset OTPType = "password_reset"
	OTPTypeEmailVerify   OTPType = "email_verify"
	OTPTypePhoneVerify   OTPType = "phone_verify"
)

// DeliveryMethod represents how an OTP is sent
type DeliveryMethod string

const (
	DeliveryMethodEmail DeliveryMethod = "email"
	DeliveryMethodSMS   DeliveryMethod = "sms"
)

// record is the ephemeral OTP state kept in the TTL store. Only a bcrypt
// hash of the code is stored.
type record struct {
	CodeHash  string         `json:"code_hash"`
	Type      OTPType        `json:"type"`
	Method    DeliveryMethod `json:"method"`
	Recipient string         `json:"recipient"`
	Attempts  int            `json:"attempts"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Config holds OTP generation and verification settings
type Config struct {
	Length       int
	Expiry       time.Duration
	MaxAttempts  int
	ResendMax    int
	ResendWindow time.Duration
}

// SendOTPRequest is the request to generate and deliver a code
type SendOTPRequest struct {
	Email  string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string         `json:"phone,omitempty" validate:"omitempty,e164"`
	Type   OTPType        `json:"type" validate:"required,oneof=signup signin password_reset email_verify phone_verify"`
	Method DeliveryMethod `json:"method" validate:"required,oneof=email sms"`
}

// VerifyOTPRequest is the request to verify a previously sent code
type VerifyOTPRequest struct {
	Email string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone string  `json:"phone,omitempty" validate:"omitempty,e164"`
	Code  string  `json:"code" validate:"required,numeric"`
	Type  OTPType `json:"type" validate:"required,oneof=signup signin password_reset email_verify phone_verify"`
}

// OTPResponse reports a successful generation
type OTPResponse struct {
	Success   bool      `json:"success"`
	Recipient string    `json:"recipient"`
	ExpiresAt time.Time `json:"expires_at"`
}
