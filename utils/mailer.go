package utils

import (
	"context"
	"fmt"
	"time"

	"diagnotech/config"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailer delivers transactional email (reset codes, appointment reminders).
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// MailgunMailer implements Mailer on top of the Mailgun API.
type MailgunMailer struct {
	Domain string
	APIKey string
	Sender string
}

// NewMailgunMailer builds a mailer from the loaded configuration.
func NewMailgunMailer() *MailgunMailer {
	return &MailgunMailer{
		Domain: config.AppConfig.MailgunDomain,
		APIKey: config.AppConfig.MailgunAPIKey,
		Sender: config.AppConfig.MailgunSender,
	}
}

// Send sends an email via Mailgun. html is optional; if provided it will be used as HTML body.
func (m *MailgunMailer) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, _, err := client.Send(c, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// ResetCodeEmail renders the password-reset code message body.
func ResetCodeEmail(code string) (subject, text, html string) {
	subject = "Your DiagnoTech password reset code"
	text = fmt.Sprintf("Your password reset code is %s. It expires in 15 minutes.", code)
	html = fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p><p>It expires in 15 minutes.</p>", code)
	return subject, text, html
}

// ReminderEmail renders the appointment reminder message body.
func ReminderEmail(doctorName, slot string) (subject, text, html string) {
	subject = "Appointment reminder"
	text = fmt.Sprintf("Reminder: you have an appointment with Dr. %s at %s.", doctorName, slot)
	html = fmt.Sprintf("<p>Reminder: you have an appointment with <strong>Dr. %s</strong> at <strong>%s</strong>.</p>", doctorName, slot)
	return subject, text, html
}
