// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/danielhkuo/rahad-campaign/models"
)

var ErrNotConfigured = errors.New("sheet endpoint not configured")

// Envelope is the body posted to the spreadsheet web app.
type Envelope struct {
	Action string         `json:"action"`
	Type   string         `json:"type"`
	Data   map[string]any `json:"data"`
}

// Client posts submissions to a spreadsheet-backed web app.
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		now:  time.Now,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.url != ""
}

// Submit sends one record. The response is opaque: any reply counts as
// delivered, only a transport failure is an error. Nothing is retried.
func (c *Client) Submit(ctx context.Context, kind models.SubmissionKind, record any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := c.envelope(kind, record)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheet request failed: %w", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return nil
}

func (c *Client) envelope(kind models.SubmissionKind, record any) ([]byte, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	data := make(map[string]any)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("record must encode as a JSON object: %w", err)
	}
	data["serverTimestamp"] = c.now().UTC().Format(time.RFC3339Nano)

	return json.Marshal(Envelope{
		Action: "submit",
		Type:   string(kind),
		Data:   data,
	})
}

// Forwarder sends submissions in the background so callers never wait on
// the spreadsheet.
type Forwarder struct {
	client *Client
	wg     sync.WaitGroup
}

func NewForwarder(client *Client) *Forwarder {
	return &Forwarder{client: client}
}

// Forward starts a send and returns immediately. Failures are logged.
func (f *Forwarder) Forward(kind models.SubmissionKind, record any) {
	if !f.client.Configured() {
		slog.Warn("sheet URL not configured, submission kept in local storage only", "type", kind)
		return
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if err := f.client.Submit(context.Background(), kind, record); err != nil {
			slog.Warn("sheet sync failed", "type", kind, "error", err)
			return
		}
		slog.Info("sheet sync dispatched", "type", kind)
	}()
}

// Wait blocks until every started send has finished.
func (f *Forwarder) Wait() {
	f.wg.Wait()
}
