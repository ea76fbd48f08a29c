package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/parceltrack/royalmail/internal/types"
)

// HTTPClient interface for dependency injection. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials are the API credential pair issued by Royal Mail.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Policy controls which classified error conditions are raised. Response
// errors (transport failure, undecodable body) are raised regardless.
type Policy struct {
	ThrowOnTrackingError  bool
	ThrowOnTechnicalError bool
}

// get issues the GET request every operation shares: fixed Accept and
// terms-acceptance headers plus the credential pair. It returns the status
// and raw body for any HTTP response, including 4xx/5xx; only obtaining no
// response at all is an error, surfaced as a non-suppressible response error.
func get(httpClient HTTPClient, req *http.Request, creds Credentials) (int, []byte, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Accept-RMG-Terms", "yes")
	req.Header.Set("X-IBM-Client-Id", creds.ClientID)
	req.Header.Set("X-IBM-Client-Secret", creds.ClientSecret)

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, &types.Error{
			Kind:    types.KindResponseError,
			Message: err.Error(),
			Cause:   errors.Wrap(err, "royal mail api request"),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &types.Error{
			Kind:    types.KindResponseError,
			Message: fmt.Sprintf("(%d) %s", resp.StatusCode, err),
			Cause:   errors.Wrap(err, "read royal mail api response"),
		}
	}
	return resp.StatusCode, body, nil
}
