package notification

import (
	"fmt"
	"net/smtp"

	"github.com/Codekiller51/brandconnect-server/config"
)

// sendEmail relays a plain-text message through the configured SMTP host.
func sendEmail(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := []byte(
		"From: " + cfg.EmailFrom + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"\r\n" +
			body + "\r\n")

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	if err := smtp.SendMail(addr, nil, cfg.EmailFrom, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}
