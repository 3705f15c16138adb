// Package contactclient submits the portfolio contact form to the relay
// endpoint and models the form's submit cycle.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// Sender delivers one contact request.
type Sender interface {
	Send(ctx context.Context, req types.ContactRequest) (*types.ContactResponse, error)
}

// ResponseError is returned for any non-2xx answer from the endpoint.
type ResponseError struct {
	StatusCode int
	// Message is the server's {"error"} text, empty when the body had none.
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("contact endpoint returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("contact endpoint returned %d", e.StatusCode)
}

// Client posts contact requests as JSON.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

// WithAPIKey sends key as both apikey and bearer Authorization, which is what
// the Supabase functions gateway expects.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a Client for the full endpoint URL, for example
// https://example.com/v1/contact.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Send(ctx context.Context, req types.ContactRequest) (*types.ContactResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode contact request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build contact request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("apikey", c.apiKey)
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read contact response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody types.ErrorResponse
		_ = json.Unmarshal(raw, &errBody)
		return nil, &ResponseError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	var out types.ContactResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode contact response: %w", err)
	}
	return &out, nil
}

var _ Sender = (*Client)(nil)
