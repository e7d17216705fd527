// Package mail sends transactional email through the Resend HTTP API.
// Delivery is best-effort: the ingestion request has already succeeded by
// the time a message is composed, so failures are logged and never
// propagated to the submitter.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"opatija/backend/internal/config"
)

const resendEndpoint = "https://api.resend.com/emails"

type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Client struct {
	apiKey     string
	from       string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(cfg config.MailConfig, log zerolog.Logger) *Client {
	return &Client{
		apiKey: cfg.ResendAPIKey,
		from:   cfg.FromAddress,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// Enabled reports whether an API key is configured. When false, sends are
// skipped silently (logged, not surfaced).
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	if !c.Enabled() {
		c.log.Warn().Msg("resend api key not configured, skipping email")
		return nil
	}

	if msg.From == "" {
		msg.From = c.from
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("resend responded %d: %s", resp.StatusCode, detail)
	}

	return nil
}
