package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/parceltrack/royalmail/internal/types"
)

// Summary retrieves the latest tracking state for one or more mail pieces in
// a single request. Caller order is preserved and no de-duplication is
// applied; the upstream API documents a limit of 30 identifiers per call but
// does not have it enforced here. An item that fails individually carries its
// error on its own mail piece rather than on the envelope.
func Summary(ctx context.Context, httpClient HTTPClient, baseURL string, creds Credentials, pol Policy, trackingNumbers []string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sanitized := make([]string, 0, len(trackingNumbers))
	for _, tn := range trackingNumbers {
		sanitized = append(sanitized, SanitizeTrackingID(tn))
	}
	url := fmt.Sprintf("%s/summary?mailPieceId=%s", baseURL, strings.Join(sanitized, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	status, body, err := get(httpClient, req, creds)
	if err != nil {
		return nil, err
	}
	resp, err := decodeMulti(status, body)
	if err != nil {
		return nil, err
	}
	if err := classify(resp, status, pol); err != nil {
		return nil, err
	}
	return resp, nil
}
