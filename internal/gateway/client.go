package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the account gateway HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultUserAgent = "sinyal/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client against the provided base URL. An empty value
// uses the default local gateway address; a bare host:port gets an http
// scheme prepended.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// APIError is a non-2xx gateway response. Error() is exactly the message the
// UI surfaces: the backend's detail text when one was parseable, otherwise a
// generic status line. Status is carried for callers that want it, but the
// gateway contract is string-message only.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorMessage extracts the surfaced message from a non-2xx body. A string
// detail is used verbatim; a structured detail is JSON-serialized; anything
// unparseable falls back to the generic status line.
func errorMessage(status int, body []byte) string {
	message := fmt.Sprintf("Request failed with status %d", status)
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return message
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		return detail
	}
	// Non-string detail: re-serialize compactly.
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload.Detail); err != nil {
		return message
	}
	return buf.String()
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, http.MethodGet, rel, nil, dest)
}

func (c *Client) getQuery(ctx context.Context, path string, values url.Values, dest any) error {
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	return c.doURL(ctx, http.MethodGet, rel, nil, dest)
}

// pathWithSegment builds a request path whose final segment may contain
// characters that need escaping, without double-escaping on serialization.
func pathWithSegment(prefix, segment string) *url.URL {
	return &url.URL{
		Path:    prefix + segment,
		RawPath: prefix + url.PathEscape(segment),
	}
}

func (c *Client) post(ctx context.Context, path string, body any, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, http.MethodPost, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body any, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base_url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
