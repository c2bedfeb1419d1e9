package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kurochkinivan/loan_ingestor/internal/config"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyLogged  = 256
)

// Webhook posts batch notifications to the matching workflow trigger.
type Webhook struct {
	log    *slog.Logger
	url    string
	client *http.Client
}

func NewWebhook(log *slog.Logger, cfg config.Webhook) *Webhook {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Webhook{
		log:    log,
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
	}
}

// Notify sends one POST per call. Any non-2xx response is an error; the
// caller decides whether that matters.
func (w *Webhook) Notify(ctx context.Context, n *domain.BatchNotification) error {
	if w.url == "" {
		w.log.DebugContext(ctx, "webhook url is not configured, skipping notification",
			slog.String("batch_id", n.BatchID))
		return nil
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyLogged))
		return fmt.Errorf("webhook responded with %s: %s", resp.Status, respBody)
	}

	w.log.InfoContext(ctx, "notification sent",
		slog.String("batch_id", n.BatchID),
		slog.Int("user_count", n.UserCount),
		slog.Int("status_code", resp.StatusCode),
	)

	return nil
}
