// Package push delivers insight notifications to the app's push gateway.
// Delivery is fire-and-forget: the gateway owns retries and receipt tracking.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notification is the gateway's wire shape.
type Notification struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Client talks to an Expo-style push endpoint.
type Client struct {
	client   *http.Client
	endpoint string
	apiToken string
}

func NewClient(endpoint, apiToken string) *Client {
	return &Client{
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: endpoint,
		apiToken: apiToken,
	}
}

// Send delivers one notification. A non-2xx gateway response is an error; the
// caller decides whether the message is dropped or requeued.
func (c *Client) Send(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code %d from push gateway", resp.StatusCode)
	}

	return nil
}
