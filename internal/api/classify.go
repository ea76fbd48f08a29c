package api

import (
	"github.com/parceltrack/royalmail/internal/types"
)

// Business tracking error codes.
var trackingCodes = map[string]types.Kind{
	"E1142": types.KindInvalidBarcodeReference,
	"E1144": types.KindProofOfDeliveryUnavailable,
	"E1145": types.KindProofOfDeliveryUnavailableForProduct,
	"E1283": types.KindTrackingNotSupported,
	"E1284": types.KindDeliveryUpdateNotAvailable,
	"E1308": types.KindUpdateNotAvailable,
	"E1307": types.KindTrackingUnavailable,
}

// API-reported technical error codes.
var technicalCodes = map[string]types.Kind{
	"E0013": types.KindMaximumParametersExceeded,
	"E0004": types.KindSchemaValidationFailed,
	"E0010": types.KindTooManyRequests,
	"E0009": types.KindInternalServerError,
	"E0001": types.KindServiceUnavailable,
}

// Fallback classification when the API supplied no recognisable error code.
var statusKinds = map[int]types.Kind{
	400: types.KindBadRequest,
	401: types.KindClientIDNotRegistered,
	404: types.KindURINotFound,
	405: types.KindMethodNotAllowed,
	429: types.KindTooManyRequests,
	500: types.KindInternalServerError,
	503: types.KindServiceUnavailable,
}

const genericErrorMessage = "Royal Mail Error"

// classify inspects a decoded envelope plus the transport status and decides
// whether a typed error must be raised. It returns nil both for plain success
// and for conditions the configured policy suppresses; in the latter case the
// caller hands the populated envelope back for direct inspection.
//
// Only the first entry of the errors array drives classification. A code that
// matches the tracking or technical table but whose switch is off does not
// fall through to the status table: that would resurface a suppressed error
// under a different kind.
func classify(resp *types.Response, status int, pol Policy) error {
	if status == 200 && !resp.HasErrors() {
		return nil
	}

	if first := resp.FirstError(); first != nil {
		if kind, ok := trackingCodes[first.ErrorCode]; ok {
			if pol.ThrowOnTrackingError {
				return raise(kind, first.ErrorDescription, resp)
			}
			return nil
		}
		if kind, ok := technicalCodes[first.ErrorCode]; ok {
			if pol.ThrowOnTechnicalError {
				return raise(kind, first.ErrorDescription, resp)
			}
			return nil
		}
	}

	if !pol.ThrowOnTechnicalError {
		return nil
	}

	// The API can report an internal failure via the body's httpCode while
	// the transport says 200; the body wins when both are present.
	code := status
	if resp.HTTPCode != nil {
		code = *resp.HTTPCode
	}
	kind, ok := statusKinds[code]
	if !ok {
		kind = types.KindInternalServerError
	}

	msg := resp.MoreInformation
	if msg == "" {
		msg = resp.HTTPMessage
	}
	if msg == "" {
		msg = genericErrorMessage
	}
	return raise(kind, msg, resp)
}

func raise(kind types.Kind, message string, resp *types.Response) *types.Error {
	if message == "" {
		message = genericErrorMessage
	}
	return &types.Error{Kind: kind, Message: message, Response: resp}
}
