package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tokenswap/internal/domain"
	"tokenswap/internal/platform/metrics"
	"tokenswap/internal/signer"
)

const maxResponseBytes = 1 << 20

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=httpclient_test -destination=mock_http_client_test.go -source=swap_provider.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SwapProviderClient talks to the sandbox trading API. Every call carries an HMAC Authorization header.
type SwapProviderClient struct {
	http            HTTPClient
	baseURL         string
	apiKey          string
	swapEndpoint    string
	tickersEndpoint string
	signer          *signer.Signer
	metrics         *metrics.Metrics
}

type Option func(*SwapProviderClient)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *SwapProviderClient) {
		c.http = httpClient
	}
}

func WithEndpoints(swap, tickers string) Option {
	return func(c *SwapProviderClient) {
		if swap != "" {
			c.swapEndpoint = swap
		}
		if tickers != "" {
			c.tickersEndpoint = tickers
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *SwapProviderClient) {
		c.metrics = m
	}
}

type swapResponse struct {
	Order     *domain.SwapOrder `json:"order"`
	ErrorCode string            `json:"errorCode"`
	Message   string            `json:"message"`
}

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (c *SwapProviderClient) Swap(ctx context.Context, order domain.ProviderSwapOrder) (out domain.SwapOrder, err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveProviderCall("swap", started, err) }()

	signed, err := c.signer.NewRequest(order, http.MethodPost, c.swapEndpoint)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.swapEndpoint, bytes.NewReader(signed.Body))
	if err != nil {
		return domain.SwapOrder{}, fmt.Errorf("failed to create swap request: %w", err)
	}
	if err = verifyOutgoingBody(req, signed); err != nil {
		return domain.SwapOrder{}, err
	}
	c.setHeaders(req, signed.Signature)
	req.Header.Set("Content-Type", "application/json")

	status, raw, err := c.do(req)
	if err != nil {
		return domain.SwapOrder{}, fmt.Errorf("failed to execute swap request: %w", err)
	}

	var payload swapResponse
	if jsonErr := json.Unmarshal(raw, &payload); jsonErr != nil {
		if !isSuccess(status) {
			return domain.SwapOrder{}, &domain.ProviderError{StatusCode: status, Message: snippet(raw)}
		}
		return domain.SwapOrder{}, fmt.Errorf("failed to decode swap response: %w", jsonErr)
	}

	if payload.ErrorCode != "" {
		return domain.SwapOrder{}, &domain.ProviderError{StatusCode: status, Code: payload.ErrorCode, Message: payload.Message}
	}
	if !isSuccess(status) {
		return domain.SwapOrder{}, &domain.ProviderError{StatusCode: status, Message: http.StatusText(status)}
	}
	if payload.Order == nil {
		return domain.SwapOrder{}, fmt.Errorf("swap response has no order")
	}

	return *payload.Order, nil
}

// verifyOutgoingBody re-reads the request body through GetBody and checks it against the signed bytes.
func verifyOutgoingBody(req *http.Request, signed signer.SignedRequest) error {
	if req.GetBody == nil {
		return domain.ErrSerializationMismatch
	}
	rc, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("failed to read swap request body: %w", err)
	}
	defer rc.Close()

	sent, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read swap request body: %w", err)
	}
	return signed.Verify(sent)
}

// GetTickers fetches every ticker pair. The request is signed over an empty JSON object and sent without a body.
func (c *SwapProviderClient) GetTickers(ctx context.Context) (rates map[string]domain.Rate, err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveProviderCall("tickers", started, err) }()

	signed, err := c.signer.NewRequest(struct{}{}, http.MethodGet, c.tickersEndpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.tickersEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tickers request: %w", err)
	}
	c.setHeaders(req, signed.Signature)

	status, raw, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute tickers request: %w", err)
	}

	if !isSuccess(status) {
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.ErrorCode != "" {
			return nil, &domain.ProviderError{StatusCode: status, Code: e.ErrorCode, Message: e.Message}
		}
		return nil, &domain.ProviderError{StatusCode: status, Message: snippet(raw)}
	}

	if err = json.Unmarshal(raw, &rates); err != nil {
		return nil, fmt.Errorf("failed to decode tickers response: %w", err)
	}
	return rates, nil
}

func (c *SwapProviderClient) setHeaders(req *http.Request, sig signer.Signature) {
	req.Header.Set("Authorization", sig.AuthHeader)
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func (c *SwapProviderClient) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

func NewSwapProviderClient(baseURL, apiKey string, s *signer.Signer, options ...Option) *SwapProviderClient {
	c := &SwapProviderClient{
		http:            http.DefaultClient,
		baseURL:         strings.TrimSuffix(baseURL, "/"),
		apiKey:          apiKey,
		swapEndpoint:    "/trade/swap",
		tickersEndpoint: "/trade/rates",
		signer:          s,
		metrics:         metrics.Default(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}
