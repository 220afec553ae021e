// Package prefsync pushes updated settings to the external preferences
// service. Synchronization is best-effort: delivery failures are logged
// and never surface to API callers.
package prefsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// Client posts setting updates to the preferences service sync endpoint.
// A Client with an empty base URL is disabled and drops every payload.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. An empty baseURL disables synchronization.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "prefsync"),
	}
}

// Enabled reports whether a sync endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// syncPayload is the wire format of one setting update.
type syncPayload struct {
	UserID string `json:"user_id"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// SyncSettings delivers each updated setting to the sync endpoint. One
// payload per setting; a failed delivery is logged and does not stop
// the remaining ones. Always returns nil so callers cannot accidentally
// propagate a sync failure.
func (c *Client) SyncSettings(ctx context.Context, settings []domain.Setting) error {
	if !c.Enabled() || len(settings) == 0 {
		return nil
	}

	for _, s := range settings {
		if err := c.syncOne(ctx, s); err != nil {
			c.log.WarnContext(ctx, "preferences sync failed",
				slog.String("user_id", s.UserID.String()),
				slog.String("key", s.Key),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (c *Client) syncOne(ctx context.Context, s domain.Setting) error {
	body, err := json.Marshal(syncPayload{
		UserID: s.UserID.String(),
		Key:    s.Key,
		Value:  s.Value,
	})
	if err != nil {
		return fmt.Errorf("prefsync: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sync", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("prefsync: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("prefsync: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("prefsync: unexpected status %d", resp.StatusCode)
	}

	return nil
}
