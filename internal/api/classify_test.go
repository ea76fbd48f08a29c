package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parceltrack/royalmail/internal/types"
)

var throwAll = Policy{ThrowOnTrackingError: true, ThrowOnTechnicalError: true}

func errorEnvelope(code string, httpCode int) *types.Response {
	hc := httpCode
	return &types.Response{
		HTTPCode: &hc,
		Errors: []types.ErrorDetail{{
			ErrorCode:        code,
			ErrorDescription: "Error description",
		}},
	}
}

func TestClassifySuccessIsNil(t *testing.T) {
	t.Parallel()
	resp := &types.Response{MailPiece: &types.MailPiece{MailPieceID: "x"}}
	assert.NoError(t, classify(resp, 200, throwAll))
}

func TestClassifyErrorCodeTables(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code string
		want types.Kind
	}{
		{"E1142", types.KindInvalidBarcodeReference},
		{"E1144", types.KindProofOfDeliveryUnavailable},
		{"E1145", types.KindProofOfDeliveryUnavailableForProduct},
		{"E1283", types.KindTrackingNotSupported},
		{"E1284", types.KindDeliveryUpdateNotAvailable},
		{"E1308", types.KindUpdateNotAvailable},
		{"E1307", types.KindTrackingUnavailable},
		{"E0013", types.KindMaximumParametersExceeded},
		{"E0004", types.KindSchemaValidationFailed},
		{"E0010", types.KindTooManyRequests},
		{"E0009", types.KindInternalServerError},
		{"E0001", types.KindServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			resp := errorEnvelope(tc.code, 404)
			err := classify(resp, 404, throwAll)
			e := asSDKError(t, err)
			assert.Equal(t, tc.want, e.Kind)
			assert.Equal(t, "Error description", e.Message)
			assert.Same(t, resp, e.Response)
		})
	}
}

func TestClassifyStatusFallbackTable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		want   types.Kind
	}{
		{400, types.KindBadRequest},
		{401, types.KindClientIDNotRegistered},
		{404, types.KindURINotFound},
		{405, types.KindMethodNotAllowed},
		{429, types.KindTooManyRequests},
		{500, types.KindInternalServerError},
		{503, types.KindServiceUnavailable},
		{403, types.KindInternalServerError}, // outside the table
	}
	for _, tc := range cases {
		err := classify(&types.Response{}, tc.status, throwAll)
		e := asSDKError(t, err)
		assert.Equal(t, tc.want, e.Kind, "status %d", tc.status)
		assert.Equal(t, "Royal Mail Error", e.Message)
	}
}

// The API sometimes reports transport success while embedding the real status
// in the body; the body's httpCode takes precedence.
func TestClassifyPrefersEnvelopeHTTPCode(t *testing.T) {
	t.Parallel()
	hc := 503
	resp := &types.Response{HTTPCode: &hc}
	err := classify(resp, 200, throwAll)
	e := asSDKError(t, err)
	assert.Equal(t, types.KindServiceUnavailable, e.Kind)

	resp = errorEnvelope("E1307", 503)
	err = classify(resp, 200, throwAll)
	e = asSDKError(t, err)
	assert.Equal(t, types.KindTrackingUnavailable, e.Kind)
}

func TestClassifyMessagePreference(t *testing.T) {
	t.Parallel()
	hc := 503
	resp := &types.Response{HTTPCode: &hc, HTTPMessage: "HTTP message", MoreInformation: "More information"}
	e := asSDKError(t, classify(resp, 503, throwAll))
	assert.Equal(t, "More information", e.Message)

	resp = &types.Response{HTTPCode: &hc, HTTPMessage: "HTTP message"}
	e = asSDKError(t, classify(resp, 503, throwAll))
	assert.Equal(t, "HTTP message", e.Message)

	resp = &types.Response{HTTPCode: &hc}
	e = asSDKError(t, classify(resp, 503, throwAll))
	assert.Equal(t, "Royal Mail Error", e.Message)
}

func TestClassifyTrackingSuppression(t *testing.T) {
	t.Parallel()
	pol := Policy{ThrowOnTrackingError: false, ThrowOnTechnicalError: true}

	// A recognised tracking code with its switch off returns the envelope;
	// it must not resurface through the status fallback.
	resp := errorEnvelope("E1307", 503)
	assert.NoError(t, classify(resp, 503, pol))

	// Technical codes still raise.
	err := classify(errorEnvelope("E0001", 503), 503, pol)
	e := asSDKError(t, err)
	assert.Equal(t, types.KindServiceUnavailable, e.Kind)
}

func TestClassifyTechnicalSuppression(t *testing.T) {
	t.Parallel()
	pol := Policy{ThrowOnTrackingError: true, ThrowOnTechnicalError: false}

	assert.NoError(t, classify(errorEnvelope("E0004", 400), 400, pol))
	assert.NoError(t, classify(&types.Response{}, 500, pol))

	// Tracking codes still raise.
	err := classify(errorEnvelope("E1142", 404), 404, pol)
	e := asSDKError(t, err)
	assert.Equal(t, types.KindInvalidBarcodeReference, e.Kind)
}

func TestClassifyBothSuppressedNeverRaises(t *testing.T) {
	t.Parallel()
	pol := Policy{}
	envelopes := []*types.Response{
		errorEnvelope("E1142", 404),
		errorEnvelope("E0001", 503),
		errorEnvelope("UNKNOWN", 500),
		{},
	}
	for _, resp := range envelopes {
		require.NoError(t, classify(resp, 500, pol))
	}
}

// An unrecognised error code falls back to status classification.
func TestClassifyUnknownCodeFallsBackToStatus(t *testing.T) {
	t.Parallel()
	err := classify(errorEnvelope("E9999", 429), 429, throwAll)
	e := asSDKError(t, err)
	assert.Equal(t, types.KindTooManyRequests, e.Kind)
}
