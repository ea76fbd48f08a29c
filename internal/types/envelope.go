package types

import "encoding/json"

// ------------------------------
// Response Envelope
// ------------------------------

// Response is the outer object returned by every operation. httpCode,
// httpMessage, moreInformation and errors are only populated when the API
// reported an error condition; a successful call populates the payload only.
//
// The upstream "mailPieces" key holds a single object for the events and
// signature operations and an array for the summary operation, so the payload
// is split across MailPiece and MailPieces and rendered through a custom
// marshaller.
type Response struct {
	HTTPCode        *int          `json:"httpCode,omitempty"`
	HTTPMessage     string        `json:"httpMessage,omitempty"`
	MoreInformation string        `json:"moreInformation,omitempty"`
	Errors          []ErrorDetail `json:"errors,omitempty"`

	// MailPiece is set by the events and signature operations.
	MailPiece *MailPiece `json:"-"`
	// MailPieces is set by the summary operation.
	MailPieces []MailPiece `json:"-"`
}

// HasErrors reports whether the API signalled an error condition in the body.
func (r *Response) HasErrors() bool {
	return r.HTTPCode != nil || len(r.Errors) > 0
}

// FirstError returns the first API-supplied error entry, or nil. Only the
// first entry drives classification; the rest are retained for inspection.
func (r *Response) FirstError() *ErrorDetail {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// MarshalJSON renders the envelope with the payload under the upstream
// "mailPieces" key, whichever shape is populated.
func (r Response) MarshalJSON() ([]byte, error) {
	type envelope struct {
		HTTPCode        *int          `json:"httpCode,omitempty"`
		HTTPMessage     string        `json:"httpMessage,omitempty"`
		MoreInformation string        `json:"moreInformation,omitempty"`
		Errors          []ErrorDetail `json:"errors,omitempty"`
		MailPieces      any           `json:"mailPieces,omitempty"`
	}
	env := envelope{
		HTTPCode:        r.HTTPCode,
		HTTPMessage:     r.HTTPMessage,
		MoreInformation: r.MoreInformation,
		Errors:          r.Errors,
	}
	switch {
	case r.MailPiece != nil:
		env.MailPieces = r.MailPiece
	case len(r.MailPieces) > 0:
		env.MailPieces = r.MailPieces
	}
	return json.Marshal(env)
}
