package api

// Shared response fixtures modelled on the payloads the mailpieces API
// returns in production.

const eventsBody = `{
  "mailPieces": {
    "mailPieceId": "090367574000000FE1E1B",
    "carrierShortName": "RM",
    "carrierFullName": "Royal Mail Group Ltd",
    "summary": {
      "uniqueItemId": "090367574000000FE1E1B",
      "oneDBarcode": "FQ087430672GB",
      "productId": "SD2",
      "productName": "Special Delivery Guaranteed",
      "productDescription": "Our guaranteed next day service with tracking and a signature on delivery",
      "productCategory": "NON-INTERNATIONAL",
      "destinationCountryCode": "GBR",
      "destinationCountryName": "United Kingdom of Great Britain and Northern Ireland",
      "originCountryCode": "GBR",
      "originCountryName": "United Kingdom of Great Britain and Northern Ireland",
      "lastEventCode": "EVNMI",
      "lastEventName": "Forwarded - Mis-sort",
      "lastEventDateTime": "2016-10-20T10:04:06+01:00",
      "lastEventLocationName": "Stafford DO",
      "statusDescription": "It is being redirected",
      "statusCategory": "IN TRANSIT",
      "statusHelpText": "The item is in transit",
      "summaryLine": "Item FQ087430672GB was forwarded to the Delivery Office on 2016-10-20.",
      "internationalPostalProvider": {
        "url": "https://www.royalmail.com/track-your-item",
        "title": "Royal Mail Group Ltd",
        "description": "Royal Mail Group Ltd"
      }
    },
    "signature": {
      "recipientName": "Elliot",
      "signatureDateTime": "2016-10-20T10:04:06+01:00",
      "imageId": "001234"
    },
    "estimatedDelivery": {
      "date": "2017-02-20",
      "startOfEstimatedWindow": "08:00:00+01:00",
      "endOfEstimatedWindow": "11:00:00+01:00"
    },
    "events": [
      {
        "eventCode": "EVNMI",
        "eventName": "Forwarded - Mis-sort",
        "eventDateTime": "2016-10-20T10:04:06+01:00",
        "locationName": "Stafford DO"
      },
      {
        "eventCode": "EVGPD",
        "eventName": "Item Leaving RM",
        "eventDateTime": "2016-10-19T22:10:00+01:00",
        "locationName": "Gatwick Mail Centre"
      }
    ],
    "links": {
      "summary": {
        "href": "/mailpieces/v2/summary?mailPieceId=090367574000000FE1E1B",
        "title": "Summary",
        "description": "Get summary"
      },
      "signature": {
        "href": "/mailpieces/v2/090367574000000FE1E1B/signature",
        "title": "Signature",
        "description": "Get signature"
      },
      "redelivery": {
        "href": "/personal/receiving-mail/redelivery",
        "title": "Redelivery",
        "description": "Book a redelivery"
      }
    }
  }
}`

const signatureBody = `{
  "mailPieces": {
    "mailPieceId": "090367574000000FE1E1B",
    "carrierShortName": "RM",
    "carrierFullName": "Royal Mail Group Ltd",
    "signature": {
      "uniqueItemId": "090367574000000FE1E1B",
      "oneDBarcode": "FQ087430672GB",
      "recipientName": "Elliot",
      "signatureDateTime": "2016-10-20T10:04:06+01:00",
      "imageId": "001234",
      "imageFormat": "image/svg+xml",
      "height": "530",
      "width": 660,
      "image": "<svg></svg>"
    },
    "links": {
      "events": {
        "href": "/mailpieces/v2/FQ087430672GB/events",
        "title": "Events",
        "description": "Get events"
      },
      "summary": {
        "href": "/mailpieces/v2/summary?mailPieceId=090367574000000FE1E1B",
        "title": "Summary",
        "description": "Get summary"
      }
    }
  }
}`

const summaryBody = `{
  "mailPieces": [
    {
      "mailPieceId": "090367574000000FE1E1B",
      "carrierShortName": "RM",
      "carrierFullName": "Royal Mail Group Ltd",
      "summary": {
        "uniqueItemId": "090367574000000FE1E1B",
        "oneDBarcode": "FQ087430672GB",
        "lastEventCode": "EVNMI",
        "lastEventDateTime": "2016-10-20T10:04:06+01:00",
        "statusCategory": "IN TRANSIT"
      },
      "links": {
        "events": {
          "href": "/mailpieces/v2/FQ087430672GB/events",
          "title": "Events",
          "description": "Get events"
        }
      }
    },
    {
      "mailPieceId": "090367574000000FE1E2C",
      "error": {
        "errorCode": "E1142",
        "errorDescription": "Barcode reference mailPieceId is not recognised ",
        "errorCause": "A mail item with that barcode cannot be located",
        "errorResolution": "Check barcode and resubmit"
      }
    }
  ]
}`
