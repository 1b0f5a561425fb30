// Package api is the typed REST client for the TAQA billing backend.
// Sessions are cookie-based: a successful sign-in sets a session cookie the
// client's jar replays on every call (the browser app's withCredentials).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxResponseBody is the maximum size of response body to read (10MB)
const maxResponseBody = 10 << 20

// sessionCookieName is the cookie the backend sets on sign-in.
const sessionCookieName = "token"

func init() {
	// Monetary fields travel as JSON numbers on this wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Client is an HTTP client for the TAQA billing API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client with a fresh cookie jar.
// Returns an error if baseURL is empty or malformed (missing scheme/host).
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrInvalidBaseURL
	}

	parsed, err := url.ParseRequestURI(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	// Normalize BaseURL by trimming trailing slashes to prevent double slashes
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// SessionToken returns the current session cookie value, or "" when no
// session is established. Used only for claim display, never for auth logic.
func (c *Client) SessionToken() string {
	base, err := url.Parse(c.BaseURL)
	if err != nil || c.HTTPClient.Jar == nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(base) {
		if ck.Name == sessionCookieName {
			return ck.Value
		}
	}
	return ""
}

// ClearSession drops the cookie jar, forgetting any session.
func (c *Client) ClearSession() {
	if jar, err := cookiejar.New(nil); err == nil {
		c.HTTPClient.Jar = jar
	}
}

// do performs a JSON request and decodes the response into out (when non-nil).
// Transport failures come back wrapped in ErrNetwork; 4xx/5xx come back as
// *Error with the body's message/error field extracted.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	respBody, _, err := c.doRaw(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// doRaw performs a request and returns the raw body and content type.
func (c *Client) doRaw(ctx context.Context, method, path string, params url.Values, body any) ([]byte, string, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	fullURL := c.BaseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := uuid.NewString()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Debug("request failed", "id", reqID, "method", method, "path", path, "error", err)
		return nil, "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}
	if len(respBody) > maxResponseBody {
		return nil, "", ErrResponseTooLarge
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := errorFromBody(resp.StatusCode, respBody)
		log.Debug("request rejected", "id", reqID, "method", method, "path", path,
			"status", resp.StatusCode, "message", apiErr.Message)
		return nil, "", apiErr
	}

	return respBody, resp.Header.Get("Content-Type"), nil
}

// errorFromBody builds an *Error from a non-2xx response, extracting the
// backend's `{message}` or `{error}` envelope when the body carries one.
func errorFromBody(status int, body []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		msg = envelope.Message
		if msg == "" {
			msg = envelope.Err
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// getBinary fetches a non-JSON resource (receipt PDFs).
func (c *Client) getBinary(ctx context.Context, path string) ([]byte, string, error) {
	return c.doRaw(ctx, http.MethodGet, path, nil, nil)
}

// listGet fetches a paginated list endpoint and unwraps the
// `{ <resource>: [...], total: N }` envelope under the given resource key.
func listGet[T any](ctx context.Context, c *Client, path string, params url.Values, key string) ([]T, int, error) {
	var envelope map[string]json.RawMessage
	if err := c.get(ctx, path, params, &envelope); err != nil {
		return nil, 0, err
	}

	var items []T
	if raw, ok := envelope[key]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, 0, fmt.Errorf("failed to parse %s: %w", key, err)
		}
	}
	total := len(items)
	if raw, ok := envelope["total"]; ok {
		if err := json.Unmarshal(raw, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to parse total: %w", err)
		}
	}
	return items, total, nil
}
