package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"twoloom/internal/application/inquiry/usecases"
)

type SMTPConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	FromAddress     string
	FromName        string
	OperatorAddress string
}

// InquiryMailer sends the two contact-form messages over SMTP: a notice to
// the studio inbox and a receipt to the requester.
type InquiryMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewInquiryMailer(config SMTPConfig) *InquiryMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &InquiryMailer{
		config: config,
		dialer: dialer,
	}
}

func (m *InquiryMailer) NotifyOperator(ctx context.Context, n usecases.InquiryNotification) error {
	subject := fmt.Sprintf("[Two Loom] New inquiry #%d from %s", n.InquiryID, n.Name)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New inquiry</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Company:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</body>
		</html>
	`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Email),
		html.EscapeString(n.Company),
		html.EscapeString(n.Phone),
		html.EscapeString(n.Message),
	)

	plainBody := fmt.Sprintf(`New inquiry

Name: %s
Email: %s
Company: %s
Phone: %s

Message:
%s
`, n.Name, n.Email, n.Company, n.Phone, n.Message)

	return m.send(ctx, m.config.OperatorAddress, subject, htmlBody, plainBody)
}

func (m *InquiryMailer) AcknowledgeRequester(ctx context.Context, n usecases.InquiryNotification) error {
	subject := "We received your inquiry"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thank you for reaching out</h2>
			<p>Hi %s,</p>
			<p>We received your message and will get back to you within a few business days.</p>
			<p>Your message:</p>
			<blockquote>%s</blockquote>
			<p>Two Loom</p>
		</body>
		</html>
	`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Message),
	)

	plainBody := fmt.Sprintf(`Thank you for reaching out

Hi %s,

We received your message and will get back to you within a few business days.

Your message:
%s

Two Loom
`, n.Name, n.Message)

	return m.send(ctx, n.Email, subject, htmlBody, plainBody)
}

func (m *InquiryMailer) send(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.config.FromAddress, m.config.FromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
