package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/username/brokercomm/src/config"
	"github.com/username/brokercomm/src/logger"
)

// ReportMailer delivers a generated report to the configured recipient.
type ReportMailer interface {
	SendReport(subject, reportCSV string) error
}

// NewReportMailer picks the mailer implementation from config. When report
// emailing is disabled it returns a noop so callers never branch.
func NewReportMailer() ReportMailer {
	if !config.Cfg.EmailReportsEnabled {
		logger.L.Info("Report emailing disabled; using noop mailer.")
		return &noopMailer{}
	}
	logger.L.Info("Using Mailgun for report delivery", "domain", config.Cfg.MailgunDomain)
	mg := mailgun.NewMailgun(config.Cfg.MailgunDomain, config.Cfg.MailgunPrivateAPIKey)
	return &mailgunMailer{
		mg:        mg,
		sender:    config.Cfg.SenderEmail,
		recipient: config.Cfg.ReportRecipient,
	}
}

type noopMailer struct{}

func (m *noopMailer) SendReport(subject, reportCSV string) error {
	logger.L.Debug("Noop mailer: skipping report email", "subject", subject)
	return nil
}

type mailgunMailer struct {
	mg        mailgun.Mailgun
	sender    string
	recipient string
}

func (m *mailgunMailer) SendReport(subject, reportCSV string) error {
	body := "Generated " + time.Now().Format(time.RFC3339) + "\n\n" + reportCSV

	message := m.mg.NewMessage(m.sender, subject, body, m.recipient)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resp, id, err := m.mg.Send(ctx, message)
	if err != nil {
		logger.L.Error("Failed to send report email via Mailgun", "error", err, "to", m.recipient, "mailgunResp", resp, "mailgunId", id)
		return fmt.Errorf("mailgun send failed: %w. Response: %s", err, resp)
	}
	logger.L.Info("Report email sent successfully via Mailgun", "to", m.recipient, "id", id)
	return nil
}
