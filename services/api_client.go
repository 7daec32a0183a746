package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"storefront/lib"
	"storefront/structs"
	"strings"
)

const maxResponseBytes = 1 << 20 // 1 MB

// APIClient talks to the remote REST API that owns the catalog and orders.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(cfg *structs.Config, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Upstream.Timeout}
	}

	return &APIClient{
		baseURL:    strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// Do sends one request and decodes a JSON response into out. A nil body sends
// no payload. Non-2xx answers return a *lib.StatusError, undecodable bodies
// return lib.ErrMalformedResponse.
func (c *APIClient) Do(ctx context.Context, method, path string, body any, header http.Header, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", lib.ErrTransportFailure, err)
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", lib.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &lib.StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", lib.ErrTransportFailure, err)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", lib.ErrMalformedResponse, err)
	}

	return nil
}
