// internal/otp/providers.go
// Delivery providers for verification codes. The provider in use is chosen
// by configuration at startup; mocks back development and tests.

package otp

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// EmailMessage is a verification-code email
type EmailMessage struct {
	To        string
	Subject   string
	Code      string
	ExpiresIn int // minutes
}

// SMSMessage is a verification-code text message
type SMSMessage struct {
	To      string
	Message string
}

// EmailProvider defines the email provider interface
type EmailProvider interface {
	SendEmail(ctx context.Context, msg *EmailMessage) error
}

// SMSProvider defines the SMS provider interface
type SMSProvider interface {
	SendSMS(ctx context.Context, msg *SMSMessage) error
}

// SMTPEmailProvider implements EmailProvider using plain SMTP
type SMTPEmailProvider struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPEmailProvider creates a new SMTP email provider
func NewSMTPEmailProvider(host string, port int, username, password, from string) EmailProvider {
	return &SMTPEmailProvider{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendEmail sends a plain-text verification email over SMTP
func (p *SMTPEmailProvider) SendEmail(ctx context.Context, msg *EmailMessage) error {
	body := fmt.Sprintf("Your verification code is: %s\n\nThis code will expire in %d minutes.", msg.Code, msg.ExpiresIn)

	message := fmt.Sprintf("From: %s\r\n", p.from)
	message += fmt.Sprintf("To: %s\r\n", msg.To)
	message += fmt.Sprintf("Subject: %s\r\n", msg.Subject)
	message += "\r\n"
	message += body

	auth := smtp.PlainAuth("", p.username, p.password, p.host)
	addr := fmt.Sprintf("%s:%d", p.host, p.port)

	if err := smtp.SendMail(addr, auth, p.from, []string{msg.To}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendGridEmailProvider implements EmailProvider using SendGrid
type SendGridEmailProvider struct {
	apiKey string
	from   string
}

// NewSendGridEmailProvider creates a new SendGrid email provider
func NewSendGridEmailProvider(apiKey, from string) EmailProvider {
	return &SendGridEmailProvider{apiKey: apiKey, from: from}
}

// SendEmail sends an email using SendGrid
func (p *SendGridEmailProvider) SendEmail(ctx context.Context, msg *EmailMessage) error {
	from := mail.NewEmail("CampusMatch", p.from)
	to := mail.NewEmail("", msg.To)

	plainText := fmt.Sprintf("Your verification code is: %s\n\nThis code will expire in %d minutes.", msg.Code, msg.ExpiresIn)

	message := mail.NewSingleEmail(from, msg.Subject, to, plainText, "")
	client := sendgrid.NewSendClient(p.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid returned error status: %d", response.StatusCode)
	}

	return nil
}

// TwilioSMSProvider implements SMSProvider using Twilio
type TwilioSMSProvider struct {
	client      *twilio.RestClient
	phoneNumber string
}

// NewTwilioSMSProvider creates a new Twilio SMS provider
func NewTwilioSMSProvider(accountSID, authToken, phoneNumber string) SMSProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSMSProvider{client: client, phoneNumber: phoneNumber}
}

// SendSMS sends an SMS using Twilio
func (p *TwilioSMSProvider) SendSMS(ctx context.Context, msg *SMSMessage) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(p.phoneNumber)
	params.SetBody(msg.Message)

	if _, err := p.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}

	return nil
}

// MockEmailProvider implements EmailProvider for development and tests
type MockEmailProvider struct {
	SentEmails []EmailMessage
}

// NewMockEmailProvider creates a new mock email provider
func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{SentEmails: make([]EmailMessage, 0)}
}

// SendEmail records the email without sending it
func (p *MockEmailProvider) SendEmail(ctx context.Context, msg *EmailMessage) error {
	p.SentEmails = append(p.SentEmails, *msg)
	return nil
}

// MockSMSProvider implements SMSProvider for development and tests
type MockSMSProvider struct {
	SentMessages []SMSMessage
}

// NewMockSMSProvider creates a new mock SMS provider
func NewMockSMSProvider() *MockSMSProvider {
	return &MockSMSProvider{SentMessages: make([]SMSMessage, 0)}
}

// SendSMS records the message without sending it
func (p *MockSMSProvider) SendSMS(ctx context.Context, msg *SMSMessage) error {
	p.SentMessages = append(p.SentMessages, *msg)
	return nil
}
