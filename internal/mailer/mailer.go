package mailer

import (
	"context"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Addr     string
	User     string
	Password string
	From     string
}

// Mailer sends plain-text mail over SMTP.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
	log  *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Mailer {
	if log == nil {
		log = zap.NewNop()
	}
	var auth smtp.Auth
	if cfg.User != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, host(cfg.Addr))
	}
	return &Mailer{
		addr: cfg.Addr,
		auth: auth,
		from: cfg.From,
		log:  log.With(zap.String("component", "mailer")),
	}
}

func (m *Mailer) Send(_ context.Context, to, subject, body string) error {
	msg := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=utf-8\r\n" +
			"\r\n" + body + "\r\n")

	start := time.Now()
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		m.log.Error("sendmail failed", zap.String("to", to), zap.Error(err))
		return err
	}
	m.log.Info("email sent", zap.String("to", to), zap.Duration("elapsed", time.Since(start)))
	return nil
}

func host(addr string) string {
	if i := strings.Index(addr, ":"); i >= 0 {
		return addr[:i]
	}
	return addr
}
