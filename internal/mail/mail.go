package mail

import (
	"context"
	"fmt"

	"foodzy/internal/config"
	"foodzy/internal/model"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// Sender delivers transactional email. Implementations must be safe for
// concurrent use.
type Sender interface {
	// SendOTP delivers a one-time passcode to the recipient.
	SendOTP(ctx context.Context, to, code string) error

	// SendOrderConfirmation delivers an order confirmation for a
	// persisted order.
	SendOrderConfirmation(ctx context.Context, to string, order *model.OrderResponse) error
}

// SMTPSender sends mail through an SMTP relay using go-mail.
type SMTPSender struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(cfg config.SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		logger: logger.With().Str("component", "mail").Logger(),
	}
}

// SendOTP delivers the passcode as a plain-text message.
func (s *SMTPSender) SendOTP(ctx context.Context, to, code string) error {
	msg, err := s.newMessage(to, "Your Foodzy OTP")
	if err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextPlain, otpBody(code))

	return s.send(ctx, msg, to)
}

// SendOrderConfirmation delivers the order summary as HTML with a
// plain-text fallback.
func (s *SMTPSender) SendOrderConfirmation(ctx context.Context, to string, order *model.OrderResponse) error {
	msg, err := s.newMessage(to, fmt.Sprintf("Order Confirmation - #%s", order.ID))
	if err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextPlain, orderConfirmationText(order))
	msg.AddAlternativeString(mail.TypeTextHTML, orderConfirmationHTML(order))

	return s.send(ctx, msg, to)
}

func (s *SMTPSender) newMessage(to, subject string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	return msg, nil
}

func (s *SMTPSender) send(ctx context.Context, msg *mail.Msg, to string) error {
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("to", to).Msg("email sent")

	return nil
}
