package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/parceltrack/royalmail/internal/types"
)

// Events retrieves the full tracking history for a single mail piece: the
// summary, signature metadata, estimated delivery window and every event.
func Events(ctx context.Context, httpClient HTTPClient, baseURL string, creds Credentials, pol Policy, trackingNumber string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/%s/events", baseURL, SanitizeTrackingID(trackingNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	status, body, err := get(httpClient, req, creds)
	if err != nil {
		return nil, err
	}
	resp, err := decodeSingle(status, body)
	if err != nil {
		return nil, err
	}
	if err := classify(resp, status, pol); err != nil {
		return nil, err
	}
	return resp, nil
}
