package mail_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	netmail "net/mail"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/service/mail"
	gomail "gopkg.in/mail.v2"
)

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.messages = append(f.messages, m...)
	return f.err
}

func newReport() *model.Report {
	return &model.Report{
		ID:         "report-1",
		Date:       "2026-10-19",
		ReportDate: "2026-10-19 12:00 (Kyiv)",
		Period:     "2026-10-12 — 2026-10-19",
		Metrics: model.Metrics{
			Top3Consultants:    []model.ConsultantStat{{Name: "Olena", ClosedCount: 2}},
			ConsultantWorkload: map[string]int{},
		},
	}
}

func TestSendReport(t *testing.T) {
	dir := t.TempDir()
	attachment := filepath.Join(dir, "techflow_report_2026-10-19.csv")
	gt.NoError(t, os.WriteFile(attachment, []byte("a,b\n"), 0o644)).Required()

	sender := &fakeSender{}
	svc := mail.New("smtp.example.com", 587, "user", "pass",
		"reports@example.com", []string{"boss@example.com", "ops@example.com"},
		mail.WithSender(sender))

	gt.NoError(t, svc.SendReport(context.Background(), newReport(), []string{attachment})).Required()
	gt.Equal(t, len(sender.messages), 1)

	msg := sender.messages[0]
	gt.Equal(t, msg.GetHeader("From"), []string{"reports@example.com"})
	gt.Equal(t, msg.GetHeader("To"), []string{"boss@example.com", "ops@example.com"})

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	gt.NoError(t, err).Required()

	parsed, err := netmail.ReadMessage(&buf)
	gt.NoError(t, err).Required()

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	gt.NoError(t, err).Required()
	gt.Equal(t, subject, "TechFlow — Weekly report (2026-10-12 — 2026-10-19)")

	body, err := io.ReadAll(parsed.Body)
	gt.NoError(t, err).Required()
	gt.S(t, parsed.Header.Get("Content-Type")).Contains("multipart/mixed")
	gt.S(t, string(body)).Contains("text/html")
	gt.S(t, string(body)).Contains(`filename="techflow_report_2026-10-19.csv"`)
}

func TestSendReport_Error(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	svc := mail.New("smtp.example.com", 587, "user", "pass",
		"reports@example.com", []string{"boss@example.com"},
		mail.WithSender(sender))

	err := svc.SendReport(context.Background(), newReport(), nil)
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to send report email")
}

func TestSendReport_CanceledContext(t *testing.T) {
	sender := &fakeSender{}
	svc := mail.New("smtp.example.com", 587, "user", "pass",
		"reports@example.com", []string{"boss@example.com"},
		mail.WithSender(sender))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gt.Error(t, svc.SendReport(ctx, newReport(), nil))
	gt.Equal(t, len(sender.messages), 0)
}

func TestSubject(t *testing.T) {
	gt.Equal(t, mail.Subject(newReport()), "TechFlow — Weekly report (2026-10-12 — 2026-10-19)")
}
