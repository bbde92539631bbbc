// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package threads is a client for the Threads Graph API keyword-search and
// post-detail endpoints.
package threads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jcteacher/threads-search-web/pkg/types"
)

// Base backoff durations for the retry loop. A retryable status waits
// statusRetryDelay × attempt number; a transport failure waits
// networkRetryDelay × attempt number. Tests override these to avoid real sleeps.
var (
	statusRetryDelay  = 1500 * time.Millisecond
	networkRetryDelay = 1200 * time.Millisecond
)

const maxAttempts = 3

// retryableStatus reports whether an HTTP status is worth another attempt.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Client issues authenticated GET requests to the Threads Graph API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// New builds a Client from cfg. It fails when no token is configured so
// that a missing credential is caught at startup rather than on the first
// request.
func New(cfg types.UpstreamConfig, log *slog.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	if log == nil {
		log = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
	if c.baseURL == "" {
		c.baseURL = "https://graph.threads.net"
	}
	if c.httpClient.Timeout == 0 {
		c.httpClient.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c, nil
}

// getJSON issues GET baseURL/path?params with the bearer token and decodes
// the 200 response body into out.
//
// It makes up to 3 attempts. A 429 or 5xx response waits
// statusRetryDelay × (attempt+1) and retries; a transport failure waits
// networkRetryDelay × (attempt+1) and retries; any other non-200 status
// fails immediately with a *RejectedError. When all attempts are exhausted
// the call fails with an *UnreachableError wrapping the last failure — for
// attempts that all ended in a retryable status, that wrapped failure is a
// *RejectedError with the final status and body.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warn("upstream request failed", "path", path, "attempt", attempt+1, "err", err)
			if err := sleep(ctx, time.Duration(attempt+1)*networkRetryDelay); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode == http.StatusOK {
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("parsing upstream response: %w", err)
			}
			return nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		if !retryableStatus(resp.StatusCode) {
			return &RejectedError{Status: resp.StatusCode, Body: string(body)}
		}

		lastErr = &RejectedError{Status: resp.StatusCode, Body: string(body)}
		c.log.Warn("upstream returned retryable status", "path", path, "status", resp.StatusCode, "attempt", attempt+1)
		if err := sleep(ctx, time.Duration(attempt+1)*statusRetryDelay); err != nil {
			return err
		}
	}

	return &UnreachableError{Err: lastErr}
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
