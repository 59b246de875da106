// Package fetch retrieves web pages for the extraction pipeline. It wraps
// http.Client with context cancellation, a per-request timeout, custom
// headers and charset decoding, and reports failures as *FetchError.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent identifies the library when the caller sets none.
const DefaultUserAgent = "wanish/1.0 (+https://github.com/neegor/wanish)"

// maxImageProbe bounds how much of an image is downloaded for dimension
// checks. JPEG size markers can sit after the metadata segments.
const maxImageProbe = 128 * 1024

// FetchError reports a failed page fetch: network error, timeout, or an
// unusable HTTP response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches documents. The zero value works; fields customize the
// request. A Client is immutable after construction and safe for concurrent
// use.
type Client struct {
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// Headers are extra request headers, applied after the User-Agent.
	Headers map[string]string
	// Timeout bounds each request when positive.
	Timeout time.Duration
	// Logger receives fetch events. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Page GETs a URL and returns the decoded HTML body and the final URL after
// redirects. Non-2xx statuses, non-HTML content types and transport errors
// come back as *FetchError.
func (c *Client) Page(ctx context.Context, rawURL string) (string, string, error) {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	contentType := resp.Header.Get("Content-Type")
	if !htmlContentType(contentType) {
		return "", "", &FetchError{URL: rawURL, Err: fmt.Errorf("unsupported content type %q", contentType)}
	}

	// charset.NewReader honors the Content-Type charset and falls back to
	// sniffing <meta charset> from the body.
	reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return "", "", &FetchError{URL: rawURL, Err: fmt.Errorf("decode charset: %w", err)}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", "", &FetchError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	c.Logger.Debug().Str("url", finalURL).Int("bytes", len(body)).Msg("fetched page")
	return string(body), finalURL, nil
}

// ImageWidth downloads the head of an image and returns its pixel width, or
// 0 when the format is unrecognized or the fetch fails.
func (c *Client) ImageWidth(ctx context.Context, rawURL string) int {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0
	}
	head, err := io.ReadAll(io.LimitReader(resp.Body, maxImageProbe))
	if err != nil {
		return 0
	}
	w, _, ok := ImageDimensions(head)
	if !ok {
		return 0
	}
	return w
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	if !strings.HasPrefix(req.URL.Scheme, "http") {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("unsupported URL scheme %q", req.URL.Scheme)}
	}

	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	if c.Timeout > 0 {
		// Clone so the caller's client keeps its own timeout. The client
		// timeout covers the body read, which a request context would not.
		cloned := *client
		cloned.Timeout = c.Timeout
		client = &cloned
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	return resp, nil
}

// htmlContentType accepts HTML-ish content types; an absent header is
// allowed since many servers omit it.
func htmlContentType(ct string) bool {
	if ct == "" {
		return true
	}
	ct = strings.ToLower(ct)
	return strings.Contains(ct, "text/html") ||
		strings.Contains(ct, "application/xhtml+xml") ||
		strings.Contains(ct, "text/plain")
}
