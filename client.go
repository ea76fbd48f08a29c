// Package royalmail is a client for the Royal Mail Tracking API. It exposes
// the three upstream operations (events history, proof-of-delivery signature
// and multi-item summary) and classifies every API error condition into a
// single tagged error value callers can match on.
package royalmail

import (
	"context"
	"net/http"
	"time"

	"github.com/parceltrack/royalmail/internal/api"
)

// DefaultBaseURL is the production endpoint for the mailpieces API.
const DefaultBaseURL = "https://api.royalmail.net/mailpieces/v2"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	creds   api.Credentials
	policy  api.Policy
}

// New constructs a Client with the credential pair issued by Royal Mail.
// Additional options can be provided via functional arguments. Both error
// suppression switches default to raising.
func New(clientID, clientSecret string, opts ...Option) *Client {
	if clientID == "" {
		panic("clientID cannot be empty")
	}
	if clientSecret == "" {
		panic("clientSecret cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   api.Credentials{ClientID: clientID, ClientSecret: clientSecret},
		policy:  api.Policy{ThrowOnTrackingError: true, ThrowOnTechnicalError: true},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	return c
}

// --------------------------------------------------------------------
// Tracking operations - delegated to internal/api
// --------------------------------------------------------------------

// Events returns the tracking history of a single mail piece: summary,
// signature metadata, estimated delivery window and the event sequence. The
// tracking number is sanitised to alphanumerics before being placed in the
// request path.
func (c *Client) Events(ctx context.Context, trackingNumber string) (*Response, error) {
	resp, err := api.Events(ctx, c.http, c.baseURL, c.creds, c.policy, trackingNumber)
	observe("events", err)
	return resp, err
}

// Signature returns the proof-of-delivery details for a single mail piece,
// including the captured signature image where one exists.
func (c *Client) Signature(ctx context.Context, trackingNumber string) (*Response, error) {
	resp, err := api.Signature(ctx, c.http, c.baseURL, c.creds, c.policy, trackingNumber)
	observe("signature", err)
	return resp, err
}

// Summary returns the latest tracking state for up to 30 mail pieces in one
// request. Identifier order is preserved; an item that fails individually
// carries the error on its own MailPiece entry.
func (c *Client) Summary(ctx context.Context, trackingNumbers ...string) (*Response, error) {
	resp, err := api.Summary(ctx, c.http, c.baseURL, c.creds, c.policy, trackingNumbers)
	observe("summary", err)
	return resp, err
}
