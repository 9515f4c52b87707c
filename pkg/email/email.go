package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"mc-creative-backend/config"
	"mc-creative-backend/internal/domain"
)

const (
	inquirySubject = "New MC Creative Director AI inquiry"
	dialTimeout    = 10 * time.Second
)

// Service sends inquiry notifications via SMTP. The connection is dialed with
// an explicit timeout and upgraded with STARTTLS before authenticating.
type Service struct {
	host     string
	port     int
	username string
	password string
	notifyTo string
}

// NewService creates the SMTP notifier from config. The login address doubles
// as the sender address.
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		notifyTo: cfg.NotifyEmail,
	}
}

// IsConfigured reports whether all four required SMTP settings are present.
// A partially configured transport is treated the same as an absent one.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.notifyTo != ""
}

// SendInquiry delivers a single plain-text notification for a submission.
func (s *Service) SendInquiry(ctx context.Context, sub *domain.ContactSubmission) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("smtp connect: %w", err)
	}
	defer conn.Close()

	// Bound the whole exchange, not just the dial.
	_ = conn.SetDeadline(time.Now().Add(dialTimeout))

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
		return fmt.Errorf("smtp starttls: %w", err)
	}
	if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := client.Rcpt(s.notifyTo); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(s.buildMessage(sub)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return client.Quit()
}

func (s *Service) buildMessage(sub *domain.ContactSubmission) []byte {
	company := sub.Company
	if company == "" {
		company = "-"
	}

	body := fmt.Sprintf(
		"New inquiry received\r\n\r\n"+
			"Name: %s\r\nEmail: %s\r\nCompany: %s\r\nMessage:\r\n%s\r\n\r\nSource: %s\r\n",
		sub.Name, sub.Email, company, sub.Message, sub.Source,
	)

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.username,
		s.notifyTo,
		sub.Email,
		inquirySubject,
		body,
	))
}
