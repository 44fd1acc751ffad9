package config

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/service/mail"
	"github.com/urfave/cli/v3"
)

// SMTP holds the report mail configuration
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// Flags returns CLI flags for SMTP configuration
func (s *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server host",
			Category:    "Email",
			Sources:     cli.EnvVars("SMTP_HOST"),
			Destination: &s.Host,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port (STARTTLS)",
			Category:    "Email",
			Value:       587,
			Sources:     cli.EnvVars("SMTP_PORT"),
			Destination: &s.Port,
		},
		&cli.StringFlag{
			Name:        "smtp-user",
			Usage:       "SMTP login user",
			Category:    "Email",
			Sources:     cli.EnvVars("SMTP_USER"),
			Destination: &s.User,
		},
		&cli.StringFlag{
			Name:        "smtp-password",
			Usage:       "SMTP login password",
			Category:    "Email",
			Sources:     cli.EnvVars("SMTP_PASSWORD"),
			Destination: &s.Password,
		},
		&cli.StringFlag{
			Name:        "email-from",
			Usage:       "Sender address of the report email",
			Category:    "Email",
			Sources:     cli.EnvVars("EMAIL_FROM"),
			Destination: &s.From,
		},
		&cli.StringFlag{
			Name:        "email-to",
			Usage:       "Comma separated recipients of the report email",
			Category:    "Email",
			Sources:     cli.EnvVars("EMAIL_TO"),
			Destination: &s.To,
		},
	}
}

// Recipients returns the trimmed, non-empty addresses of To
func (s *SMTP) Recipients() []string {
	return lo.Compact(lo.Map(strings.Split(s.To, ","), func(addr string, _ int) string {
		return strings.TrimSpace(addr)
	}))
}

// IsConfigured checks if every setting needed to send mail is present
func (s *SMTP) IsConfigured() bool {
	return s.Host != "" && s.User != "" && s.Password != "" && s.From != "" && len(s.Recipients()) > 0
}

// Configure creates the mailer, or returns nil when email is not configured
func (s *SMTP) Configure() (interfaces.Mailer, error) {
	if !s.IsConfigured() {
		return nil, nil
	}
	if s.Port <= 0 || s.Port > 65535 {
		return nil, goerr.New("invalid SMTP port", goerr.V("port", s.Port))
	}

	return mail.New(s.Host, s.Port, s.User, s.Password, s.From, s.Recipients()), nil
}

// LogValue returns structured log value
func (s SMTP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", s.Host),
		slog.Int("port", s.Port),
		slog.String("user", s.User),
		slog.Bool("has_password", s.Password != ""),
		slog.String("from", s.From),
		slog.Any("to", s.Recipients()),
	)
}
