package royalmail

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL overrides the production API endpoint. Intended for tests and
// for routing through a gateway; any trailing slash is removed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
			return fmt.Errorf("invalid base URL %q", baseURL)
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The supplied client
// must return responses for 4xx/5xx statuses rather than converting them to
// errors, so that error bodies remain inspectable.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = httpClient
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: the dumps include the
// credential headers.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithoutTrackingErrors stops business tracking errors (invalid barcode,
// proof of delivery unavailable, tracking not supported, update not yet
// available) from being raised. The call then returns the populated envelope
// so the caller can branch on its httpCode and errors directly.
func WithoutTrackingErrors() Option {
	return func(c *Client) error {
		c.policy.ThrowOnTrackingError = false
		return nil
	}
}

// WithoutTechnicalErrors stops technical errors (schema validation, rate
// limit, outage) and status-derived fallback errors from being raised, with
// the same envelope-return behaviour. Response errors (no response obtained,
// undecodable body) are raised regardless.
func WithoutTechnicalErrors() Option {
	return func(c *Client) error {
		c.policy.ThrowOnTechnicalError = false
		return nil
	}
}
