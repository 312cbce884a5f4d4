// ABOUTME: HTTP item source that downloads the item list from the remote service
// ABOUTME: Classifies failures as network, protocol or decode errors

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"items-app-api/core/domain"
	apperrors "items-app-api/core/errors"
	"items-app-api/core/interfaces"
)

// maxPayloadBytes bounds how much of a response body is read
const maxPayloadBytes = 10 << 20

// ItemSource fetches the full item list with a single GET and no retries
type ItemSource struct {
	client   interfaces.HTTPClient
	endpoint string
}

// NewItemSource builds a source for baseURL joined with path
func NewItemSource(client interfaces.HTTPClient, baseURL, path string) (*ItemSource, error) {
	if client == nil {
		return nil, &apperrors.ValidationError{Field: "client", Message: "HTTP client is required"}
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &apperrors.ValidationError{Field: "base_url", Message: fmt.Sprintf("invalid base URL %q", baseURL)}
	}

	endpoint := base.String()
	if path != "" {
		endpoint = base.JoinPath(path).String()
	}

	return &ItemSource{client: client, endpoint: endpoint}, nil
}

// Endpoint returns the full URL the source downloads from
func (s *ItemSource) Endpoint() string {
	return s.endpoint
}

// FetchAll downloads and decodes the item list in payload order
func (s *ItemSource) FetchAll(ctx context.Context) ([]domain.RemoteItem, error) {
	resp, err := s.client.Get(ctx, s.endpoint)
	if err != nil {
		return nil, &apperrors.NetworkError{URL: s.endpoint, Err: err}
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &apperrors.ProtocolError{URL: s.endpoint, StatusCode: resp.StatusCode()}
	}

	data, err := io.ReadAll(io.LimitReader(body, maxPayloadBytes+1))
	if err != nil {
		return nil, &apperrors.NetworkError{URL: s.endpoint, Err: err}
	}
	if len(data) > maxPayloadBytes {
		return nil, &apperrors.DecodeError{URL: s.endpoint, Err: fmt.Errorf("payload exceeds %d bytes", maxPayloadBytes)}
	}

	var items []domain.RemoteItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &apperrors.DecodeError{URL: s.endpoint, Err: err}
	}
	if items == nil {
		return nil, &apperrors.DecodeError{URL: s.endpoint, Err: errors.New("payload is null, expected an array")}
	}

	return items, nil
}
