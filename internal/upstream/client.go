// Package upstream - HTTP клиент DSMR data logger'а.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/models"
)

const (
	ActualPath   = "/api/v1/sm/actual"
	maxBodyBytes = 1 << 20
)

type Client struct {
	client  *http.Client
	baseURL *url.URL
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. Its Timeout is overwritten.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

func NewClient(baseURL *url.URL, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client.Timeout = timeout
	return c
}

// ActualURL returns the base URL with its path replaced by ActualPath.
func (c *Client) ActualURL() string {
	u := *c.baseURL
	u.Path = ActualPath
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// FetchActual performs exactly one GET against the data logger.
func (c *Client) FetchActual(ctx context.Context) (models.Batch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ActualURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", models.ErrUpstreamUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send HTTP request: %v", models.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: data logger returned status %d", models.ErrUpstreamUnreachable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", models.ErrUpstreamUnreachable, err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", models.ErrUpstreamDecode, maxBodyBytes)
	}

	var data models.ActualResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response into JSON: %v", models.ErrUpstreamDecode, err)
	}
	if data.Actual == nil {
		return nil, fmt.Errorf("%w: response has no \"actual\" field", models.ErrUpstreamDecode)
	}

	return *data.Actual, nil
}
