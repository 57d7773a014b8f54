// Package slack delivers the scheduled-receipt digest to an incoming
// webhook. Plain stdlib HTTP: one POST with a timeout. A failed delivery
// is reported and the next scheduled run is the retry.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookClient posts JSON payloads to a Slack incoming webhook.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// NewWebhookClient builds the client. Slack answers fast; 10 seconds is
// plenty before giving up.
func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Post sends the payload. Any non-200 answer is an error carrying Slack's
// response body (Slack explains rejections in plain text).
func (c *WebhookClient) Post(ctx context.Context, payload any) error {
	if c.url == "" {
		return fmt.Errorf("slack webhook URL is not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack answered %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
