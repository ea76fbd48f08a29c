// Error classification for the SDK. Every failed call surfaces a single
// tagged *Error whose Kind identifies the exact condition and whose Class
// decides which suppression switch (if any) governs it.
package types

import "fmt"

// Kind identifies a classified error condition.
type Kind int

const (
	// KindResponseError covers transport failures, unparseable bodies and
	// missing payloads. It is never suppressible.
	KindResponseError Kind = iota

	// Business tracking errors, driven by the API error code.
	KindInvalidBarcodeReference
	KindProofOfDeliveryUnavailable
	KindProofOfDeliveryUnavailableForProduct
	KindTrackingNotSupported
	KindDeliveryUpdateNotAvailable
	KindUpdateNotAvailable
	KindTrackingUnavailable

	// Technical errors, driven by the API error code or the status fallback.
	KindBadRequest
	KindClientIDNotRegistered
	KindURINotFound
	KindMethodNotAllowed
	KindMaximumParametersExceeded
	KindSchemaValidationFailed
	KindTooManyRequests
	KindInternalServerError
	KindServiceUnavailable
)

// String returns a human-readable representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindResponseError:
		return "ResponseError"
	case KindInvalidBarcodeReference:
		return "InvalidBarcodeReference"
	case KindProofOfDeliveryUnavailable:
		return "ProofOfDeliveryUnavailable"
	case KindProofOfDeliveryUnavailableForProduct:
		return "ProofOfDeliveryUnavailableForProduct"
	case KindTrackingNotSupported:
		return "TrackingNotSupported"
	case KindDeliveryUpdateNotAvailable:
		return "DeliveryUpdateNotAvailable"
	case KindUpdateNotAvailable:
		return "UpdateNotAvailable"
	case KindTrackingUnavailable:
		return "TrackingUnavailable"
	case KindBadRequest:
		return "BadRequest"
	case KindClientIDNotRegistered:
		return "ClientIdNotRegistered"
	case KindURINotFound:
		return "UriNotFound"
	case KindMethodNotAllowed:
		return "MethodNotAllowed"
	case KindMaximumParametersExceeded:
		return "MaximumParametersExceeded"
	case KindSchemaValidationFailed:
		return "SchemaValidationFailed"
	case KindTooManyRequests:
		return "TooManyRequests"
	case KindInternalServerError:
		return "InternalServerError"
	case KindServiceUnavailable:
		return "ServiceUnavailable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Class groups kinds by the switch that governs them.
type Class int

const (
	// ClassResponse errors are always raised; there is no usable response.
	ClassResponse Class = iota

	// ClassTracking errors describe the tracked item or request semantics
	// and are governed by the tracking-error switch.
	ClassTracking

	// ClassTechnical errors describe API or infrastructure failure and are
	// governed by the technical-error switch.
	ClassTechnical
)

// String returns a human-readable representation of the error class.
func (c Class) String() string {
	switch c {
	case ClassResponse:
		return "Response"
	case ClassTracking:
		return "Tracking"
	case ClassTechnical:
		return "Technical"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Class returns the class a kind belongs to.
func (k Kind) Class() Class {
	switch k {
	case KindInvalidBarcodeReference,
		KindProofOfDeliveryUnavailable,
		KindProofOfDeliveryUnavailableForProduct,
		KindTrackingNotSupported,
		KindDeliveryUpdateNotAvailable,
		KindUpdateNotAvailable,
		KindTrackingUnavailable:
		return ClassTracking
	case KindBadRequest,
		KindClientIDNotRegistered,
		KindURINotFound,
		KindMethodNotAllowed,
		KindMaximumParametersExceeded,
		KindSchemaValidationFailed,
		KindTooManyRequests,
		KindInternalServerError,
		KindServiceUnavailable:
		return ClassTechnical
	default:
		return ClassResponse
	}
}

// Error is the single error value raised for every classified condition.
// Response carries the full envelope available at the time of failure so a
// caller never loses the diagnostic context; it is nil when no body could be
// decoded (transport failures, malformed JSON).
type Error struct {
	Kind     Kind
	Message  string
	Response *Response
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("royalmail: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}
