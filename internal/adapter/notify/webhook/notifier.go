// Package webhook delivers restoration notifications as a single JSON POST
// to a chat-style incoming webhook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Notifier posts messages to a webhook URL. Delivery is attempted once.
type Notifier struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

type payload struct {
	Text          string `json:"text"`
	RestorationID string `json:"restoration_id"`
}

// New creates a Notifier for url. timeout bounds each request.
func New(url string, timeout time.Duration, logger *slog.Logger) *Notifier {
	return &Notifier{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "webhook"),
	}
}

// Notify posts text for the given restoration. Any non-2xx response is an error.
func (n *Notifier) Notify(ctx context.Context, restorationID uuid.UUID, text string) error {
	body, err := json.Marshal(payload{Text: text, RestorationID: restorationID.String()})
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
	}

	n.log.DebugContext(ctx, "webhook delivered",
		slog.String("restoration_id", restorationID.String()),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}

// Noop drops every message. It is used when no webhook URL is configured.
type Noop struct{}

// Notify does nothing.
func (Noop) Notify(context.Context, uuid.UUID, string) error { return nil }
