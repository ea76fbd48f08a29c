package royalmail

import "github.com/parceltrack/royalmail/internal/types"

// Aliases of the internal domain model so callers only import this package.
type (
	Response                    = types.Response
	MailPiece                   = types.MailPiece
	Summary                     = types.Summary
	Signature                   = types.Signature
	Event                       = types.Event
	EstimatedDelivery           = types.EstimatedDelivery
	Links                       = types.Links
	Link                        = types.Link
	InternationalPostalProvider = types.InternationalPostalProvider
	ErrorDetail                 = types.ErrorDetail
)
