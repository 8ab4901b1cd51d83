package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Codekiller51/brandconnect-server/config"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

// sendSMS posts the message to the configured SMS gateway webhook. Tanzanian
// carriers are reached through a local aggregator, so delivery is one HTTP
// call from our side.
func sendSMS(ctx context.Context, phoneNumber, body string) error {
	cfg := config.AppConfig
	if cfg.SMSWebhookURL == "" {
		return fmt.Errorf("sms webhook not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"to":      phoneNumber,
		"message": body,
	})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.SMSWebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.SMSWebhookToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.SMSWebhookToken)
	}

	resp, err := smsClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms webhook returned status %d", resp.StatusCode)
	}
	return nil
}
