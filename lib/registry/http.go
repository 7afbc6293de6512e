// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// maxResponseSize caps registry response bodies. A contribution list
// is small; anything near this size is a misbehaving server.
const maxResponseSize = 16 << 20

// HTTPClient fetches contributions from a registry service. The
// service exposes a single endpoint, GET <base>/v1/contributions,
// returning a JSON document:
//
//	{"contributions": [ ... ]}
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient returns a client for the registry at baseURL. A
// trailing slash on baseURL is tolerated. Requests time out after
// 30 seconds; use the context on ListAll for a tighter bound.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type contributionsResponse struct {
	Contributions []command.Contribution `json:"contributions"`
}

// ListAll fetches the full contribution list from the registry.
func (c *HTTPClient) ListAll(ctx context.Context) ([]command.Contribution, error) {
	endpoint := c.baseURL + "/v1/contributions"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building registry request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading registry response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry %s: HTTP %d: %s",
			endpoint, response.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded contributionsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("parsing registry response: %w", err)
	}

	return decoded.Contributions, nil
}
