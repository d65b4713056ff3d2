package mexc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production MEXC v3 REST host.
	DefaultBaseURL = "https://api.mexc.com"

	endpointServerTime  = "/api/v3/time"
	endpointConvertList = "/api/v3/capital/convert/list"
	endpointConvert     = "/api/v3/capital/convert"
)

// Client issues public and signed calls against the MEXC v3 REST API.
// Every call opens its own connection; nothing is held between calls.
type Client struct {
	apiKey  string
	baseURL string
	signer  *Signer
	timeout time.Duration
	retry   RetryConfig
}

// NewClient creates a MEXC API client. An empty baseURL selects the
// production host; timeout bounds every HTTP call.
func NewClient(apiKey, secretKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		signer:  NewSigner(secretKey),
		timeout: timeout,
		retry:   DefaultRetryConfig(),
	}
}

// SetRetryConfig overrides the transport retry policy.
func (c *Client) SetRetryConfig(config RetryConfig) {
	c.retry = config
}

// ServerTime fetches the exchange's authoritative clock in epoch
// milliseconds. This is the only time source used for signing; the
// local clock is never substituted because the exchange rejects
// signatures whose timestamp drifts beyond its tolerance window.
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	status, body, err := c.PublicRequest(ctx, http.MethodGet, endpointServerTime, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get server time: %w", err)
	}
	if status != http.StatusOK {
		return 0, NewAPIError(status, body)
	}

	var payload struct {
		ServerTime int64 `json:"serverTime"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("failed to decode server time response: %w", err)
	}
	return payload.ServerTime, nil
}

// PublicRequest performs an unauthenticated call and returns the
// status code and raw body. Status interpretation is left to callers.
func (c *Client) PublicRequest(ctx context.Context, method, endpoint string, params *Params) (int, []byte, error) {
	return c.do(ctx, method, endpoint, params, nil)
}

// SignedRequest performs an authenticated call. It fetches a fresh
// server timestamp first (one extra round trip per signed call, a
// deliberate tradeoff over caching a clock offset), signs the
// parameters, and attaches signature, timestamp and the API-key
// header. Status interpretation is left to callers.
func (c *Client) SignedRequest(ctx context.Context, method, endpoint string, params *Params) (int, []byte, error) {
	serverTime, err := c.ServerTime(ctx)
	if err != nil {
		return 0, nil, err
	}

	if params == nil {
		params = NewParams()
	}
	params.Set("signature", c.signer.Sign(serverTime, params))
	params.Set("timestamp", strconv.FormatInt(serverTime, 10))

	headers := http.Header{}
	headers.Set("x-mexc-apikey", c.apiKey)
	headers.Set("Content-Type", "application/json")

	return c.do(ctx, method, endpoint, params, headers)
}

// ListDustAssets returns the account's dust balances eligible for
// conversion, in the order the exchange reports them.
func (c *Client) ListDustAssets(ctx context.Context) ([]DustAsset, error) {
	status, body, err := c.SignedRequest(ctx, http.MethodGet, endpointConvertList, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list dust assets: %w", err)
	}
	if status != http.StatusOK {
		return nil, NewAPIError(status, body)
	}

	var assets []DustAsset
	if err := json.Unmarshal(body, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode dust asset list: %w", err)
	}
	return assets, nil
}

// ConvertDust converts the given asset symbols to MX. The symbols are
// sent comma-joined as a single parameter; the decoded response body
// is returned unmodified.
func (c *Client) ConvertDust(ctx context.Context, assets []string) (ConvertResult, error) {
	params := NewParams()
	params.Set("asset", strings.Join(assets, ","))

	status, body, err := c.SignedRequest(ctx, http.MethodPost, endpointConvert, params)
	if err != nil {
		return nil, fmt.Errorf("failed to convert dust: %w", err)
	}
	if status != http.StatusOK {
		return nil, NewAPIError(status, body)
	}
	return ConvertResult(body), nil
}

// do executes one HTTP exchange. Transport failures are retried per
// the retry policy; a received status is returned as-is, never
// retried.
func (c *Client) do(ctx context.Context, method, endpoint string, params *Params, headers http.Header) (int, []byte, error) {
	requestURL := c.baseURL + endpoint
	if params.Len() > 0 {
		requestURL += "?" + params.Encode()
	}

	var status int
	var body []byte
	err := withRetry(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build request %s %s: %w", method, endpoint, err)
		}
		for key, values := range headers {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}

		// A fresh client (and transport) per call: no connection is
		// reused across calls.
		client := &http.Client{Timeout: c.timeout}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("request %s %s failed: %w", method, endpoint, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response for %s %s: %w", method, endpoint, err)
		}

		status = resp.StatusCode
		body = data
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return status, body, nil
}
