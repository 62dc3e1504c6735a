package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client defines the operations this service needs from the external
// BrickLink catalog.
type Client interface {
	// PartExists checks whether a part ID exists in the live catalog.
	PartExists(ctx context.Context, partID string) (bool, error)
	// LookupMinifig resolves a Rebrickable minifig ID to its BrickLink
	// counterpart. An empty result with nil error means no mapping exists.
	LookupMinifig(ctx context.Context, rbFigID string) (string, error)
}

// NewClient creates an HTTP-backed catalog client.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.ApiKey,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func (c *httpClient) PartExists(ctx context.Context, partID string) (bool, error) {
	status, _, err := c.get(ctx, "/items/part/"+url.PathEscape(partID))
	if err != nil {
		return false, err
	}
	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("catalog existence check returned status %d", status)
	}
}

func (c *httpClient) LookupMinifig(ctx context.Context, rbFigID string) (string, error) {
	status, body, err := c.get(ctx, "/minifigs/"+url.PathEscape(rbFigID)+"/bricklink")
	if err != nil {
		return "", err
	}
	switch status {
	case http.StatusOK:
		var payload struct {
			BricklinkID string `json:"bricklink_id"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", fmt.Errorf("malformed minifig lookup payload: %w", err)
		}
		return payload.BricklinkID, nil
	case http.StatusNotFound:
		return "", nil
	default:
		return "", fmt.Errorf("minifig lookup returned status %d", status)
	}
}

func (c *httpClient) get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
