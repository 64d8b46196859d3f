package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer implements Mailer using the Resend API.
type ResendMailer struct {
	client    *resend.Client
	fromEmail string
}

// NewResendMailer creates a new ResendMailer.
func NewResendMailer(apiKey, fromEmail string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if fromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}, nil
}

// SendOTC sends the one-time verification code to the given address.
func (m *ResendMailer) SendOTC(ctx context.Context, toEmail, code string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("AZURA <%s>", m.fromEmail),
		To:      []string{toEmail},
		Subject: "Verification code from AZURA",
		Html: fmt.Sprintf(
			"<p>Here is your verification code: <strong>%s</strong></p><br><p>This code will expire in 1 hour.</p>",
			code,
		),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}
