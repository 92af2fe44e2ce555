// Package fetch provides the HTTP plumbing shared by the remote API clients:
// a cookie-aware client with default headers, status checking and JSON decoding.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeBuilder/1.0)"

// Result holds the raw response of a request.
type Result struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
}

// Error represents an error during a request.
// StatusCode is zero when no response was received.
type Error struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client sends requests with shared options and a cookie jar
type Client struct {
	http *http.Client
	opts *Options
}

// NewClient creates a client with its own cookie jar.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	// cookiejar.New only fails on a non-nil PublicSuffixList error
	jar, _ := cookiejar.New(nil)
	return &Client{
		http: &http.Client{Timeout: opts.Timeout, Jar: jar},
		opts: opts,
	}
}

// Cookie returns the value of a named cookie stored for rawURL, or "" if none.
func (c *Client) Cookie(rawURL, name string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// Get performs a GET and fails on any non-2xx status.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) (*Result, error) {
	return c.Do(ctx, http.MethodGet, rawURL, nil, headers)
}

// PostForm posts url-encoded form values and fails on any non-2xx status.
func (c *Client) PostForm(ctx context.Context, rawURL string, form url.Values, headers map[string]string) (*Result, error) {
	merged := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
	for k, v := range headers {
		merged[k] = v
	}
	return c.Do(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()), merged)
}

// GetJSON performs a GET and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	result, err := c.Get(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	return DecodeJSON(result, out)
}

// DecodeJSON decodes a result body into out.
func DecodeJSON(result *Result, out any) error {
	if err := json.Unmarshal(result.Body, out); err != nil {
		return &Error{
			URL:        result.URL,
			Message:    "failed to decode JSON response",
			StatusCode: result.StatusCode,
			Cause:      err,
		}
	}
	return nil
}

// Do executes a request. The result is returned alongside the error for non-2xx statuses.
func (c *Client) Do(ctx context.Context, method, rawURL string, body io.Reader, headers map[string]string) (*Result, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     rawURL,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, &Error{
			URL:     rawURL,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     rawURL,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:        rawURL,
			Message:    "failed to read response body",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	result := &Result{
		URL:         rawURL,
		Body:        bodyBytes,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &Error{
			URL:        rawURL,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return result, nil
}

// StatusCode extracts the HTTP status from a fetch error, or 0.
func StatusCode(err error) int {
	var fetchErr *Error
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}
