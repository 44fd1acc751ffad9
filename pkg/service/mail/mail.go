package mail

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/service/render"
	gomail "gopkg.in/mail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Service sends report emails over SMTP
type Service struct {
	sender Sender
	from   string
	to     []string
}

// Option configures Service
type Option func(*Service)

// WithSender replaces the SMTP dialer
func WithSender(sender Sender) Option {
	return func(s *Service) {
		s.sender = sender
	}
}

// New creates a mail service. The dialer upgrades the connection with
// STARTTLS and refuses to send when the server does not support it.
func New(host string, port int, user, password, from string, to []string, opts ...Option) *Service {
	dialer := gomail.NewDialer(host, port, user, password)
	dialer.StartTLSPolicy = gomail.MandatoryStartTLS

	s := &Service{
		sender: dialer,
		from:   from,
		to:     to,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subject returns the subject line of a report email
func Subject(report *model.Report) string {
	return fmt.Sprintf("TechFlow — Weekly report (%s)", report.Period)
}

// SendReport sends the HTML summary with the given files attached
func (s *Service) SendReport(ctx context.Context, report *model.Report, attachments []string) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "context canceled before sending email")
	}

	body, err := render.EmailHTML(report)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.to...)
	msg.SetHeader("Subject", Subject(report))
	msg.SetBody("text/html", body)
	for _, path := range attachments {
		msg.Attach(path)
	}

	if err := s.sender.DialAndSend(msg); err != nil {
		return goerr.Wrap(err, "failed to send report email",
			goerr.V("to", s.to),
			goerr.V("reportID", report.ID))
	}
	return nil
}
