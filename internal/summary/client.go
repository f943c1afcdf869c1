package summary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lensview/lens-go/pkg/constants"
	"go.uber.org/zap"
)

// Client issues writes to the model summary service.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a Client for the given service endpoint. An empty
// endpoint selects the documented default. A nil httpClient falls back to
// http.DefaultClient, which matches the service contract: no timeout tuning.
func NewClient(endpoint string, httpClient *http.Client, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Endpoint returns the service endpoint this client writes to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// PutSummary issues a single PUT of a JSON document to the given service path
// and returns the response body as text. The service signals rejection through
// the body alone; status codes are not inspected, so any reachable response is
// returned to the caller as-is. Transport failures are returned as errors.
func (c *Client) PutSummary(ctx context.Context, path string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build summary request, %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach model summary service, %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model summary response, %w", err)
	}
	return string(text), nil
}
