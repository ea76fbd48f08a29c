package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------
//
// One shared entity graph is used for all three operations; each operation
// simply populates the subset the API returns for it. Absent JSON keys map to
// zero values / nil pointers and are suppressed again on marshal.

// MailPiece represents a single trackable mail item.
type MailPiece struct {
	MailPieceID       string             `json:"mailPieceId"`
	CarrierShortName  string             `json:"carrierShortName,omitempty"`
	CarrierFullName   string             `json:"carrierFullName,omitempty"`
	Summary           *Summary           `json:"summary,omitempty"`
	Signature         *Signature         `json:"signature,omitempty"`
	EstimatedDelivery *EstimatedDelivery `json:"estimatedDelivery,omitempty"`
	Events            []Event            `json:"events,omitempty"`
	Links             *Links             `json:"links,omitempty"`
	Error             *ErrorDetail       `json:"error,omitempty"`
}

// Summary is the latest tracking state of a mail piece, including a
// denormalised snapshot of its most recent event.
type Summary struct {
	UniqueItemID                string                       `json:"uniqueItemId,omitempty"`
	OneDBarcode                 string                       `json:"oneDBarcode,omitempty"`
	ProductID                   string                       `json:"productId,omitempty"`
	ProductName                 string                       `json:"productName,omitempty"`
	ProductDescription          string                       `json:"productDescription,omitempty"`
	ProductCategory             string                       `json:"productCategory,omitempty"`
	DestinationCountryCode      string                       `json:"destinationCountryCode,omitempty"`
	DestinationCountryName      string                       `json:"destinationCountryName,omitempty"`
	OriginCountryCode           string                       `json:"originCountryCode,omitempty"`
	OriginCountryName           string                       `json:"originCountryName,omitempty"`
	LastEventCode               string                       `json:"lastEventCode,omitempty"`
	LastEventName               string                       `json:"lastEventName,omitempty"`
	LastEventDateTime           *time.Time                   `json:"lastEventDateTime,omitempty"`
	LastEventLocationName       string                       `json:"lastEventLocationName,omitempty"`
	StatusDescription           string                       `json:"statusDescription,omitempty"`
	StatusCategory              string                       `json:"statusCategory,omitempty"`
	StatusHelpText              string                       `json:"statusHelpText,omitempty"`
	SummaryLine                 string                       `json:"summaryLine,omitempty"`
	InternationalPostalProvider *InternationalPostalProvider `json:"internationalPostalProvider,omitempty"`
}

// Signature is the proof-of-delivery capture. The embedded image and barcode
// identifiers are only returned by the dedicated signature operation.
type Signature struct {
	UniqueItemID      string     `json:"uniqueItemId,omitempty"`
	OneDBarcode       string     `json:"oneDBarcode,omitempty"`
	RecipientName     string     `json:"recipientName,omitempty"`
	SignatureDateTime *time.Time `json:"signatureDateTime,omitempty"`
	ImageID           string     `json:"imageId,omitempty"`
	ImageFormat       string     `json:"imageFormat,omitempty"`
	Height            *int       `json:"height,omitempty"`
	Width             *int       `json:"width,omitempty"`
	// Image is inline SVG markup or base64-encoded raster data,
	// depending on ImageFormat.
	Image string `json:"image,omitempty"`
}

// Event is a single tracking scan. Events are kept in the order the API
// returned them, which is chronological.
type Event struct {
	EventCode     string     `json:"eventCode,omitempty"`
	EventName     string     `json:"eventName,omitempty"`
	EventDateTime *time.Time `json:"eventDateTime,omitempty"`
	LocationName  string     `json:"locationName,omitempty"`
}

// EstimatedDelivery is the delivery window for a mail piece. The window
// boundaries share Date's calendar day but carry their own offsets.
type EstimatedDelivery struct {
	Date                   time.Time  `json:"date"`
	StartOfEstimatedWindow *time.Time `json:"startOfEstimatedWindow,omitempty"`
	EndOfEstimatedWindow   *time.Time `json:"endOfEstimatedWindow,omitempty"`
}

// Links collects the hypermedia pointers returned alongside a mail piece.
// None of them is followed automatically.
type Links struct {
	Summary    *Link `json:"summary,omitempty"`
	Signature  *Link `json:"signature,omitempty"`
	Events     *Link `json:"events,omitempty"`
	Redelivery *Link `json:"redelivery,omitempty"`
}

// Link is a hypermedia pointer to a related operation.
type Link struct {
	Href        string `json:"href,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// InternationalPostalProvider identifies the postal operator handling an item
// once it leaves the Royal Mail network.
type InternationalPostalProvider struct {
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorDetail is a single API-supplied error entry.
type ErrorDetail struct {
	ErrorCode        string `json:"errorCode,omitempty"`
	ErrorDescription string `json:"errorDescription,omitempty"`
	ErrorCause       string `json:"errorCause,omitempty"`
	ErrorResolution  string `json:"errorResolution,omitempty"`
}
