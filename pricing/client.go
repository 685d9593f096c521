// Package pricing fetches priced GPU instance offerings from the
// upstream pricing API.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yukti-cloud/gpu-advisor/models"
)

// ErrUpstream covers transport failures and non-2xx replies from the
// pricing API. Handlers map it to a generic unavailable message.
var ErrUpstream = errors.New("pricing API unavailable")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchOptions retrieves current instance records for one region. The
// result is scoped to this call; nothing is cached.
func (c *Client) FetchOptions(ctx context.Context, region string) ([]models.GPUOption, error) {
	reqURL := c.baseURL
	if region != "" {
		sep := "?"
		if u, err := url.Parse(c.baseURL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		reqURL = c.baseURL + sep + "region=" + url.QueryEscape(region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var envelope struct {
		Data []models.GPUOption `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrUpstream, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: missing data array", ErrUpstream)
	}

	return envelope.Data, nil
}
