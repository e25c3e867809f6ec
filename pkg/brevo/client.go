// Package brevo is a minimal client for the Brevo (former Sendinblue)
// transactional email API. It covers the single-message send operation only.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.brevo.com/v3"

// Contact is an email address with an optional display name.
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SendEmailRequest is the envelope for POST /smtp/email.
type SendEmailRequest struct {
	Sender      Contact   `json:"sender"`
	To          []Contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

type sendEmailResponse struct {
	MessageID string `json:"messageId"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client calls the Brevo HTTP API with a process-wide API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Brevo API client. The key is passed explicitly rather
// than read from a shared singleton so callers (and tests) control it.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SendTransactionalEmail sends a single transactional email and returns the
// provider-assigned message identifier. Any non-2xx response is returned as
// an error carrying the provider's message; the client never retries.
func (c *Client) SendTransactionalEmail(ctx context.Context, req SendEmailRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("brevo: failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/smtp/email", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("brevo: failed to build request: %w", err)
	}
	httpReq.Header.Set("api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("brevo: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("brevo: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return "", fmt.Errorf("brevo: send rejected (%s): %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("brevo: send failed with status %d", resp.StatusCode)
	}

	var sendResp sendEmailResponse
	if err := json.Unmarshal(body, &sendResp); err != nil {
		return "", fmt.Errorf("brevo: failed to decode response: %w", err)
	}

	return sendResp.MessageID, nil
}
