// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: One attempt per request; retries and backoff are left to callers

package standard

import (
	"context"
	"net/http"
	"time"

	"items-app-api/core/interfaces"
)

const userAgent = "ItemsAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewLoggingHTTPClient creates a client whose outgoing requests are logged
func NewLoggingHTTPClient(timeout time.Duration, logger interfaces.Logger) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &LoggingRoundTripper{
				Transport: http.DefaultTransport,
				Logger:    logger,
			},
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}
