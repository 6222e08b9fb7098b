// Package notify emails the run's CSV reports to the configured recipient.
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"jobsweep/config"
	"jobsweep/errors"
	"jobsweep/logger"
)

// Mailer sends one message per run with every report attached, over an
// authenticated SMTP session with STARTTLS.
type Mailer struct {
	sender    string
	recipient string
	logger    *zap.SugaredLogger

	// dial is swappable so tests can verify no connection is attempted
	// when the run directory has nothing to send
	dial func() (gomail.SendCloser, error)
}

// NewMailer creates a mailer from SMTP configuration
func NewMailer(cfg config.SMTPConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.Password)
	return &Mailer{
		sender:    cfg.Sender,
		recipient: cfg.Recipient,
		logger:    logger.ComponentLogger("notify"),
		dial:      func() (gomail.SendCloser, error) { return dialer.Dial() },
	}
}

// Send attaches every file directly inside dir to a single message and sends
// it. A missing or empty directory fails with a delivery error before any
// SMTP connection is made. Single attempt, no retry.
func (m *Mailer) Send(dir string, runDate time.Time) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.WrapDelivery(err, "read reports directory "+dir)
	}

	var attachments []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		attachments = append(attachments, filepath.Join(dir, entry.Name()))
	}
	if len(attachments) == 0 {
		return errors.NewDeliveryf("no reports found in %s", dir)
	}

	date := runDate.Format("2006-01-02")
	message := gomail.NewMessage()
	message.SetHeader("From", m.sender)
	message.SetHeader("To", m.recipient)
	message.SetHeader("Subject", fmt.Sprintf("Data Analysis Reports %s", date))
	message.SetBody("text/plain", "Please find attached reports for today's analysis.")
	for _, path := range attachments {
		message.Attach(path)
	}

	sender, err := m.dial()
	if err != nil {
		return errors.WrapDelivery(err, "connect to SMTP server")
	}
	defer sender.Close()

	if err := gomail.Send(sender, message); err != nil {
		return errors.WrapDelivery(err, "send report email")
	}

	m.logger.Infow("Report email sent",
		"recipient", m.recipient,
		"attachments", len(attachments),
		"run_date", date,
	)
	return nil
}
