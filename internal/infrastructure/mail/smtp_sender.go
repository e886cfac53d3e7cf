package mail

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"decora_festas/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var ErrMissingSMTPConfig = errors.New("missing SMTP_HOST configuration")

// SMTPSender delivers the email channel through a configured SMTP relay.
//
// Env vars:
//   - SMTP_HOST (required unless mock mode)
//   - SMTP_PORT (default: 587)
//   - SMTP_USERNAME / SMTP_PASSWORD
//   - SMTP_FROM (default: no-reply@decorafestas.local)
//   - EMAIL_MOCK: log instead of sending (local/dev)

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	mockMode bool
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSenderFromEnv() (*SMTPSender, error) {
	if isEmailMockEnabled() {
		log.Printf("[mail][sender] mock mode enabled")
		return &SMTPSender{mockMode: true}, nil
	}

	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		return nil, ErrMissingSMTPConfig
	}

	port := 587
	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	from := strings.TrimSpace(os.Getenv("SMTP_FROM"))
	if from == "" {
		from = "no-reply@decorafestas.local"
	}

	return &SMTPSender{
		host:     host,
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if s.mockMode {
		log.Printf("[mail][sender] mock send to=%s subject=%q body_len=%d", to, subject, len(body))
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{gomail.WithPort(s.port)}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		log.Printf("[mail][sender] client init failed err=%v", err)
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][sender] send failed to=%s err=%v", to, err)
		return err
	}
	log.Printf("[mail][sender] send success to=%s subject=%q", to, subject)
	return nil
}

func isEmailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
