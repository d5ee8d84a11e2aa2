// Package transport executes single HTTP exchanges for the protocol
// adapters. It never retries and never queues.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"snippets/internal/domain"
	"snippets/pkg/log"
)

// Doer is the part of *http.Client the adapters need.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxBody caps how much of a response is kept in memory.
const maxBody = 32 << 20

// Response is a fully read HTTP response. URL is where the request
// ended up after redirects.
type Response struct {
	StatusCode int
	URL        string
	Header     http.Header
	Body       []byte
}

// Request describes one outgoing call.
type Request struct {
	Method      string
	URL         string
	Query       url.Values
	Body        []byte
	ContentType string
	Accept      string
	Token       string
}

// Client sends requests through a Doer.
type Client struct {
	doer      Doer
	userAgent string
}

// New creates a client. A nil doer falls back to http.DefaultClient.
func New(doer Doer, userAgent string) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{doer: doer, userAgent: userAgent}
}

// Do executes r and reads the whole body. Non-2xx statuses and connection
// failures are returned as *domain.TransportError. For a non-2xx status the
// read response is returned alongside the error, so callers whose protocol
// carries errors in the body can still decode it.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	target := r.URL
	if len(r.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, &domain.TransportError{URL: target, Err: err}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	if r.Accept != "" {
		req.Header.Set("Accept", r.Accept)
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := c.doer.Do(req)
	if err != nil {
		log.GlobalDebugCtx(ctx, "request failed", "method", r.Method, "url", r.URL, "error", err)
		return nil, &domain.TransportError{URL: r.URL, Err: err}
	}
	defer res.Body.Close()

	content, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, &domain.TransportError{URL: r.URL, StatusCode: res.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	final := r.URL
	if res.Request != nil && res.Request.URL != nil {
		final = res.Request.URL.String()
	}
	out := &Response{StatusCode: res.StatusCode, URL: final, Header: res.Header, Body: content}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.GlobalWarnCtx(ctx, "unexpected status", "method", r.Method, "url", r.URL, "status", res.StatusCode)
		return out, &domain.TransportError{URL: r.URL, StatusCode: res.StatusCode, Body: snippet(content)}
	}

	log.GlobalDebugCtx(ctx, "request done", "method", r.Method, "url", r.URL, "status", res.StatusCode)
	return out, nil
}

// Get is a plain unauthenticated GET.
func (c *Client) Get(ctx context.Context, target string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: target})
}

func snippet(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
