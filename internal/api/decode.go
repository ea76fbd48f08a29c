package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/parceltrack/royalmail/internal/types"
)

// ------------------------------
// Wire shapes
// ------------------------------
//
// The wire structs deliberately keep every date/time as a string and every
// coercible number as raw JSON so that one malformed field can be dropped
// without aborting the rest of the object graph. The builders below map them
// into the domain model.

type wireEnvelope struct {
	HTTPCode        json.RawMessage `json:"httpCode"`
	HTTPMessage     string          `json:"httpMessage"`
	MoreInformation string          `json:"moreInformation"`
	Errors          []wireError     `json:"errors"`
	MailPieces      json.RawMessage `json:"mailPieces"`
}

type wireError struct {
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
	ErrorCause       string `json:"errorCause"`
	ErrorResolution  string `json:"errorResolution"`
}

type wireMailPiece struct {
	MailPieceID       string                 `json:"mailPieceId"`
	CarrierShortName  string                 `json:"carrierShortName"`
	CarrierFullName   string                 `json:"carrierFullName"`
	Summary           *wireSummary           `json:"summary"`
	Signature         *wireSignature         `json:"signature"`
	EstimatedDelivery *wireEstimatedDelivery `json:"estimatedDelivery"`
	Events            []wireEvent            `json:"events"`
	Links             *wireLinks             `json:"links"`
	Error             *wireError             `json:"error"`
}

type wireSummary struct {
	UniqueItemID                string    `json:"uniqueItemId"`
	OneDBarcode                 string    `json:"oneDBarcode"`
	ProductID                   string    `json:"productId"`
	ProductName                 string    `json:"productName"`
	ProductDescription          string    `json:"productDescription"`
	ProductCategory             string    `json:"productCategory"`
	DestinationCountryCode      string    `json:"destinationCountryCode"`
	DestinationCountryName      string    `json:"destinationCountryName"`
	OriginCountryCode           string    `json:"originCountryCode"`
	OriginCountryName           string    `json:"originCountryName"`
	LastEventCode               string    `json:"lastEventCode"`
	LastEventName               string    `json:"lastEventName"`
	LastEventDateTime           string    `json:"lastEventDateTime"`
	LastEventLocationName       string    `json:"lastEventLocationName"`
	StatusDescription           string    `json:"statusDescription"`
	StatusCategory              string    `json:"statusCategory"`
	StatusHelpText              string    `json:"statusHelpText"`
	SummaryLine                 string    `json:"summaryLine"`
	InternationalPostalProvider *wireLink `json:"internationalPostalProvider"`
}

type wireSignature struct {
	UniqueItemID      string          `json:"uniqueItemId"`
	OneDBarcode       string          `json:"oneDBarcode"`
	RecipientName     string          `json:"recipientName"`
	SignatureDateTime string          `json:"signatureDateTime"`
	ImageID           string          `json:"imageId"`
	ImageFormat       string          `json:"imageFormat"`
	Height            json.RawMessage `json:"height"`
	Width             json.RawMessage `json:"width"`
	Image             string          `json:"image"`
}

type wireEvent struct {
	EventCode     string `json:"eventCode"`
	EventName     string `json:"eventName"`
	EventDateTime string `json:"eventDateTime"`
	LocationName  string `json:"locationName"`
}

type wireEstimatedDelivery struct {
	Date                   string `json:"date"`
	StartOfEstimatedWindow string `json:"startOfEstimatedWindow"`
	EndOfEstimatedWindow   string `json:"endOfEstimatedWindow"`
}

type wireLinks struct {
	Summary    *wireLink `json:"summary"`
	Signature  *wireLink `json:"signature"`
	Events     *wireLink `json:"events"`
	Redelivery *wireLink `json:"redelivery"`
}

// wireLink doubles as the shape of internationalPostalProvider, which carries
// url instead of href.
type wireLink struct {
	Href        string `json:"href"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ------------------------------
// Envelope decoding
// ------------------------------

// decodeSingle parses the response body for the events and signature
// operations, whose mailPieces payload is a single object.
func decodeSingle(status int, body []byte) (*types.Response, error) {
	env, raw, err := decodeEnvelope(status, body)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var mp wireMailPiece
		if err := json.Unmarshal(raw, &mp); err != nil {
			return nil, responseError(status, body, err)
		}
		env.MailPiece = buildMailPiece(&mp)
	} else if status == 200 && !env.HasErrors() {
		// A success response with no payload and no error signal is not a
		// response this API is documented to return.
		return nil, responseError(status, body, nil)
	}
	return env, nil
}

// decodeMulti parses the response body for the summary operation, whose
// mailPieces payload is an array. The payload key is optional here: an
// overall request-level failure returns the bare error envelope.
func decodeMulti(status int, body []byte) (*types.Response, error) {
	env, raw, err := decodeEnvelope(status, body)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var mps []wireMailPiece
		if err := json.Unmarshal(raw, &mps); err != nil {
			return nil, responseError(status, body, err)
		}
		env.MailPieces = make([]types.MailPiece, 0, len(mps))
		for i := range mps {
			env.MailPieces = append(env.MailPieces, *buildMailPiece(&mps[i]))
		}
	}
	return env, nil
}

func decodeEnvelope(status int, body []byte) (*types.Response, json.RawMessage, error) {
	var env wireEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, responseError(status, body, err)
	}

	resp := &types.Response{
		HTTPCode:        coerceInt(env.HTTPCode),
		HTTPMessage:     env.HTTPMessage,
		MoreInformation: env.MoreInformation,
	}
	for i := range env.Errors {
		resp.Errors = append(resp.Errors, *buildErrorDetail(&env.Errors[i]))
	}

	raw := env.MailPieces
	if isJSONNull(raw) {
		raw = nil
	}
	return resp, raw, nil
}

// responseError builds the non-suppressible "(status) raw body" error raised
// when the response cannot be interpreted at all.
func responseError(status int, body []byte, cause error) *types.Error {
	if cause != nil {
		cause = errors.Wrap(cause, "decode royal mail api response")
	}
	return &types.Error{
		Kind:    types.KindResponseError,
		Message: fmt.Sprintf("(%d) %s", status, body),
		Cause:   cause,
	}
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ------------------------------
// Domain builders
// ------------------------------
//
// Pure mapping functions, one per nested shape. Each tolerates any
// combination of present and absent optional sub-objects.

func buildMailPiece(w *wireMailPiece) *types.MailPiece {
	mp := &types.MailPiece{
		MailPieceID:      w.MailPieceID,
		CarrierShortName: w.CarrierShortName,
		CarrierFullName:  w.CarrierFullName,
	}
	if w.Summary != nil {
		mp.Summary = buildSummary(w.Summary)
	}
	if w.Signature != nil {
		mp.Signature = buildSignature(w.Signature)
	}
	if w.EstimatedDelivery != nil {
		mp.EstimatedDelivery = buildEstimatedDelivery(w.EstimatedDelivery)
	}
	for i := range w.Events {
		mp.Events = append(mp.Events, *buildEvent(&w.Events[i]))
	}
	if w.Links != nil {
		mp.Links = buildLinks(w.Links)
	}
	if w.Error != nil {
		mp.Error = buildErrorDetail(w.Error)
	}
	return mp
}

func buildSummary(w *wireSummary) *types.Summary {
	s := &types.Summary{
		UniqueItemID:           w.UniqueItemID,
		OneDBarcode:            w.OneDBarcode,
		ProductID:              w.ProductID,
		ProductName:            w.ProductName,
		ProductDescription:     w.ProductDescription,
		ProductCategory:        w.ProductCategory,
		DestinationCountryCode: w.DestinationCountryCode,
		DestinationCountryName: w.DestinationCountryName,
		OriginCountryCode:      w.OriginCountryCode,
		OriginCountryName:      w.OriginCountryName,
		LastEventCode:          w.LastEventCode,
		LastEventName:          w.LastEventName,
		LastEventDateTime:      parseDateTime(w.LastEventDateTime),
		LastEventLocationName:  w.LastEventLocationName,
		StatusDescription:      w.StatusDescription,
		StatusCategory:         w.StatusCategory,
		StatusHelpText:         w.StatusHelpText,
		SummaryLine:            w.SummaryLine,
	}
	if w.InternationalPostalProvider != nil {
		s.InternationalPostalProvider = buildInternationalPostalProvider(w.InternationalPostalProvider)
	}
	return s
}

func buildSignature(w *wireSignature) *types.Signature {
	return &types.Signature{
		UniqueItemID:      w.UniqueItemID,
		OneDBarcode:       w.OneDBarcode,
		RecipientName:     w.RecipientName,
		SignatureDateTime: parseDateTime(w.SignatureDateTime),
		ImageID:           w.ImageID,
		ImageFormat:       w.ImageFormat,
		Height:            coerceInt(w.Height),
		Width:             coerceInt(w.Width),
		Image:             w.Image,
	}
}

func buildEvent(w *wireEvent) *types.Event {
	return &types.Event{
		EventCode:     w.EventCode,
		EventName:     w.EventName,
		EventDateTime: parseDateTime(w.EventDateTime),
		LocationName:  w.LocationName,
	}
}

// buildEstimatedDelivery parses the date-only component first; without it the
// window boundaries cannot be interpreted and the whole window is omitted.
// The boundaries are the date string concatenated with separately supplied
// time-of-day strings and parse independently of each other.
func buildEstimatedDelivery(w *wireEstimatedDelivery) *types.EstimatedDelivery {
	date, err := time.Parse("2006-01-02", w.Date)
	if err != nil {
		return nil
	}
	return &types.EstimatedDelivery{
		Date:                   date,
		StartOfEstimatedWindow: parseDateTime(w.Date + "T" + w.StartOfEstimatedWindow),
		EndOfEstimatedWindow:   parseDateTime(w.Date + "T" + w.EndOfEstimatedWindow),
	}
}

func buildLinks(w *wireLinks) *types.Links {
	links := &types.Links{}
	if w.Summary != nil {
		links.Summary = buildLink(w.Summary)
	}
	if w.Signature != nil {
		links.Signature = buildLink(w.Signature)
	}
	if w.Events != nil {
		links.Events = buildLink(w.Events)
	}
	if w.Redelivery != nil {
		links.Redelivery = buildLink(w.Redelivery)
	}
	return links
}

func buildLink(w *wireLink) *types.Link {
	return &types.Link{
		Href:        w.Href,
		Title:       w.Title,
		Description: w.Description,
	}
}

func buildInternationalPostalProvider(w *wireLink) *types.InternationalPostalProvider {
	return &types.InternationalPostalProvider{
		URL:         w.URL,
		Title:       w.Title,
		Description: w.Description,
	}
}

func buildErrorDetail(w *wireError) *types.ErrorDetail {
	return &types.ErrorDetail{
		ErrorCode:        strings.TrimSpace(w.ErrorCode),
		ErrorDescription: strings.TrimSpace(w.ErrorDescription),
		ErrorCause:       strings.TrimSpace(w.ErrorCause),
		ErrorResolution:  strings.TrimSpace(w.ErrorResolution),
	}
}

// ------------------------------
// Field-level parsing
// ------------------------------

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// parseDateTime parses a timestamp in any of the layouts the API has been
// observed to emit. A field that fails to parse is treated as absent; it
// never aborts decoding of its siblings.
func parseDateTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// coerceInt accepts a JSON number or a numeric string, which the API uses
// interchangeably for httpCode and the signature image dimensions.
func coerceInt(raw json.RawMessage) *int {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
