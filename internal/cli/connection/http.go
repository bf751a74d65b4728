package connection

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/beagle-go/internal/telemetry/logger"
	"github.com/yndnr/beagle-go/internal/telemetry/metric"
)

// Delete report messages, one per identifier.
const (
	DeletedOK     = "Successfully deleted"
	DeletedFailed = "Failed to be deleted"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the backend base URL; a missing scheme defaults to http.
	BaseURL string
	// Token supplies the current access token before each request.
	Token func() string
	// TLS overrides the transport TLS configuration when non-nil.
	TLS *tls.Config
	// UserAgent overrides the default user agent.
	UserAgent string

	Logger  logger.Logger
	Metrics *metric.Registry
}

// Client issues authenticated requests against the backend. Calls block
// until the transport returns; no client-side deadline is imposed.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	ua      string
	logger  logger.Logger
	metrics *metric.Registry
}

// New creates a Client.
func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	transport := http.DefaultTransport
	if opts.TLS != nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = opts.TLS
		transport = t
	}

	tokenFn := opts.Token
	if tokenFn == nil {
		tokenFn = func() string { return "" }
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "beagle-cli/dev"
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Transport: transport},
		token:   tokenFn,
		ua:      ua,
		logger:  log,
		metrics: opts.Metrics,
	}
}

// BaseURL returns the normalized base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Result is the outcome of one dispatched request.
type Result struct {
	StatusCode  int
	Status      string
	Body        json.RawMessage
	RequestBody []byte
}

// OK reports whether the response carried a success status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns a StatusError for non-success results, nil otherwise.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &StatusError{StatusCode: r.StatusCode, Status: r.Status, RequestBody: r.RequestBody}
}

// StatusError carries the diagnostic context of a failed write: the
// response reason phrase and the request body that was sent.
type StatusError struct {
	StatusCode  int
	Status      string
	RequestBody []byte
}

func (e *StatusError) Error() string {
	if len(e.RequestBody) == 0 {
		return fmt.Sprintf("request failed: %s", e.Status)
	}
	return fmt.Sprintf("request failed: %s (sent: %s)", e.Status, e.RequestBody)
}

// Get issues a GET against a catalog path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Result, error) {
	full := c.baseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, full, path, nil)
}

// GetURL issues a GET against an absolute URL, used for pagination
// cursors which arrive fully formed with their own query parameters.
func (c *Client) GetURL(ctx context.Context, absolute string) (*Result, error) {
	label := absolute
	if u, err := url.Parse(absolute); err == nil {
		label = strings.TrimPrefix(u.Path, "/")
	}
	return c.do(ctx, http.MethodGet, absolute, label, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Result, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+path, path, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Result, error) {
	return c.do(ctx, http.MethodPut, c.baseURL+path, path, body)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Result, error) {
	return c.do(ctx, http.MethodPatch, c.baseURL+path, path, body)
}

// Delete issues a DELETE against a single resource path.
func (c *Client) Delete(ctx context.Context, path string) (*Result, error) {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, path, nil)
}

// BulkDelete deletes one resource per identifier under the collection
// path and reports the outcome per identifier. A failure for one
// identifier does not stop the rest; the report is the result.
func (c *Client) BulkDelete(ctx context.Context, collection string, ids []string) map[string]string {
	report := make(map[string]string, len(ids))
	for _, id := range ids {
		res, err := c.Delete(ctx, collection+id+"/")
		if err == nil && res.StatusCode == http.StatusNoContent {
			report[id] = DeletedOK
		} else {
			report[id] = DeletedFailed
		}
	}
	return report
}

// requestLogger returns the client logger enriched with the request ID
// carried by the context.
func (c *Client) requestLogger(ctx context.Context) logger.Logger {
	if id := logger.RequestIDFromContext(ctx); id != "" {
		return c.logger.With("request_id", id)
	}
	return c.logger
}

// do issues one request. label is the catalog-relative path used for
// metrics and logging; full is the complete URL.
func (c *Client) do(ctx context.Context, method, full, label string, body any) (*Result, error) {
	var reqBody []byte
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("connection: marshal body: %w", err)
		}
		reqBody = data
		reader = bytes.NewReader(data)
	}

	requestID := "req-" + ulid.Make().String()
	ctx = logger.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, full, reader)
	if err != nil {
		return nil, fmt.Errorf("connection: create request: %w", err)
	}

	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.ua)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveRequest(method, label, 0, elapsed)
		}
		return nil, fmt.Errorf("connection: %s %s: %w", method, label, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("connection: read response: %w", err)
	}

	if c.metrics != nil {
		c.metrics.ObserveRequest(method, label, resp.StatusCode, elapsed)
	}
	c.requestLogger(ctx).Debug("request complete",
		"method", method,
		"endpoint", label,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Result{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		Body:        respBody,
		RequestBody: reqBody,
	}, nil
}
