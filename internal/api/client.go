// Gateway client for the Coach Assistant REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ameziane/coachctl/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:5000"

// snippetLimit caps how much of a non-JSON body is embedded in an APIError.
const snippetLimit = 200

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token. Useful in tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// envelope is the uniform response wrapper every backend endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// APIError is a normalized backend failure: a non-2xx status, an envelope with
// success=false, or a body that was not the expected envelope at all.
type APIError struct {
	Status  int
	Message string
	// Body holds a truncated snippet of the raw response when it was not valid
	// JSON (an HTML error page masquerading as an API response).
	Body string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error: status %d, non-JSON body: %q", e.Status, e.Body)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error: status %d", e.Status)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can branch
// with errors.Is instead of inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Body != "":
		return shared.ErrMalformedResponse
	case e.Status == http.StatusUnauthorized:
		return shared.ErrNotAuthenticated
	case e.Status == http.StatusForbidden:
		return shared.ErrForbidden
	case e.Status == http.StatusNotFound:
		return shared.ErrNotFound
	}
	return nil
}

// Client is the API gateway: every HTTP call to the backend goes through it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
}

// ClientOpts contains optional settings for creating a Client.
type ClientOpts struct {
	// HTTPClient overrides the underlying client (tests inject mock transports).
	HTTPClient *http.Client
	// Timeout applies to the default client when HTTPClient is nil.
	Timeout time.Duration
	// RequestsPerSecond enables client-side throttling; zero disables it.
	RequestsPerSecond float64
}

// NewClient creates a gateway client for the given base URL and token source.
func NewClient(baseURL string, tokens TokenSource, opts ClientOpts) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		limiter:    limiter,
	}
}

// BaseURL returns the backend base URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the envelope's data into result.
func (c *Client) Get(ctx context.Context, endpoint string, result any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, "", result)
}

// Post performs a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, endpoint string, body, result any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, endpoint, reader, "application/json", result)
}

// Put performs a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, endpoint string, body, result any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, endpoint, reader, "application/json", result)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, result any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, "", result)
}

// PostForm performs a multipart POST for binary payloads (athlete photos,
// exercise videos, medical certificates). The bearer token is attached the same
// way as JSON calls and the response is parsed through the same envelope.
func (c *Client) PostForm(ctx context.Context, endpoint string, fields map[string]string, fileField, filename string, file io.Reader, result any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	return c.do(ctx, http.MethodPost, endpoint, &buf, writer.FormDataContentType(), result)
}

// do issues one HTTP request and normalizes the response.
//
// Success means a 2xx status and an envelope with success=true; the envelope's
// data is unmarshalled into result when result is non-nil. Everything else
// returns an error: transport failures wrap shared.ErrAPIRequest, non-JSON
// bodies become an *APIError with a body snippet, and envelope failures become
// an *APIError carrying the server's message.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if !isJSON(resp.Header.Get("Content-Type")) || json.Unmarshal(raw, &env) != nil {
		return &APIError{Status: resp.StatusCode, Body: truncate(raw, snippetLimit)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func isJSON(contentType string) bool {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.TrimSpace(mediaType)
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func truncate(raw []byte, limit int) string {
	s := string(raw)
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// query builds a URL query string from filter fields, appending only fields
// that are set. Absent fields are omitted, never sent as empty or "null".
type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) str(key, value string) *query {
	if value != "" {
		q.values.Set(key, value)
	}
	return q
}

func (q *query) num(key string, value int) *query {
	if value != 0 {
		q.values.Set(key, fmt.Sprintf("%d", value))
	}
	return q
}

func (q *query) boolean(key string, value *bool) *query {
	if value != nil {
		q.values.Set(key, fmt.Sprintf("%t", *value))
	}
	return q
}

// encode returns "?k=v&..." or "" when no field was set.
func (q *query) encode() string {
	if len(q.values) == 0 {
		return ""
	}
	return "?" + q.values.Encode()
}
