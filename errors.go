package royalmail

import (
	"errors"

	"github.com/parceltrack/royalmail/internal/types"
)

// Re-export the shared SDK error taxonomy so callers compare against a single
// set of symbols.
type (
	// Error is the tagged error raised for every classified condition. It
	// carries the full envelope available at the time of failure.
	Error = types.Error
	// Kind identifies the exact classified condition.
	Kind = types.Kind
	// Class groups kinds by the suppression switch that governs them.
	Class = types.Class
)

const (
	KindResponseError                        = types.KindResponseError
	KindInvalidBarcodeReference              = types.KindInvalidBarcodeReference
	KindProofOfDeliveryUnavailable           = types.KindProofOfDeliveryUnavailable
	KindProofOfDeliveryUnavailableForProduct = types.KindProofOfDeliveryUnavailableForProduct
	KindTrackingNotSupported                 = types.KindTrackingNotSupported
	KindDeliveryUpdateNotAvailable           = types.KindDeliveryUpdateNotAvailable
	KindUpdateNotAvailable                   = types.KindUpdateNotAvailable
	KindTrackingUnavailable                  = types.KindTrackingUnavailable
	KindBadRequest                           = types.KindBadRequest
	KindClientIDNotRegistered                = types.KindClientIDNotRegistered
	KindURINotFound                          = types.KindURINotFound
	KindMethodNotAllowed                     = types.KindMethodNotAllowed
	KindMaximumParametersExceeded            = types.KindMaximumParametersExceeded
	KindSchemaValidationFailed               = types.KindSchemaValidationFailed
	KindTooManyRequests                      = types.KindTooManyRequests
	KindInternalServerError                  = types.KindInternalServerError
	KindServiceUnavailable                   = types.KindServiceUnavailable
)

const (
	ClassResponse  = types.ClassResponse
	ClassTracking  = types.ClassTracking
	ClassTechnical = types.ClassTechnical
)

// AsError unwraps err to the SDK's tagged error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the classified kind of err and whether err is an SDK error.
func KindOf(err error) (Kind, bool) {
	if e, ok := AsError(err); ok {
		return e.Kind, true
	}
	return 0, false
}
