package mailer

import (
	"fmt"
	"time"

	"rental-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notifier sends the post-confirmation guest notification. Delivery is
// best-effort: callers log failures and keep the booking.
type Notifier interface {
	SendBookingConfirmation(name, email string, checkIn, checkOut time.Time) error
}

type SMTPMailer struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func NewSMTPMailer(cfg utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		log: log.With(zap.String("mailer", "smtp")),
	}
}

func (m *SMTPMailer) SendBookingConfirmation(name, email string, checkIn, checkOut time.Time) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for your booking from %s to %s.\nWe look forward to welcoming you!",
		name,
		utils.FormatDate(checkIn),
		utils.FormatDate(checkOut),
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Booking Confirmation")
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", email, err)
	}

	m.log.Info("Confirmation email sent", zap.String("email", email))
	return nil
}
