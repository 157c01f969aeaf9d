// Package sheetfeed provides a read-only client for the spreadsheet feed API.
//
// # Overview
//
// The feed API exposes three documents per spreadsheet: the worksheets feed,
// the list feed (one entry per row, keyed by column header) and the cells
// feed (one entry per non-empty cell). This package fetches them over HTTP
// and maps the response onto Spreadsheet, Worksheet, Row and Cells.
//
// # Client Usage
//
//	client, err := sheetfeed.NewClient(sheetfeed.ClientOptions{})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	sheet, err := client.GetSpreadsheet(ctx, &sheetfeed.SpreadsheetOptions{Key: key})
//	if err != nil {
//		log.Printf("spreadsheet fetch failed: %v", err)
//	}
//
//	rows, err := sheet.Worksheets[0].Rows(ctx, &sheetfeed.RowOptions{SQ: "age>25"})
//	cells, err := sheet.Worksheets[0].Cells(ctx, &sheetfeed.CellOptions{Range: "R1C1:R1C2"})
//
// # Wire Formats
//
// Two representations are supported, selected by ClientOptions.Format:
//
//   - FormatJSON (alt=json): text nodes appear as {"$t": "..."} and
//     namespaced names use "$" ("gsx$name", "gs$cell").
//   - FormatXML (alt=atom): the Atom document is decoded into the same
//     Document tree, with attributes under "$", text under "_" and
//     namespaced names using ":" ("gsx:name", "gs:cell").
//
// The mappers only use the accessors Text, Attr, Entries and
// Document.Field, which accept both shapes.
//
// # Visibility and Projection
//
// Requests without a credential go to the public/values projection. With a
// credential they go to private/full. A StaticToken is sent as a legacy
// Authorization header; a Delegate performs the request itself (see OAuth2).
//
// # Error Handling
//
//   - InvalidArgumentError: missing options, key or worksheet; no request is made
//   - InvalidCredentialError: HTTP 401
//   - AccessDeniedError: a redirect, a cross-origin rejection, or a worksheets
//     feed without a title (unpublished spreadsheet)
//   - HTTPError: any other status >= 400, e.g. "HTTP error 400: Bad Request"
//   - TransportError: network failure or an empty response
//   - DecodeError: a body that is not well-formed for the requested format
//
// Each has an Is* helper based on errors.As.
//
// # Design Rationale
//
//   - No caching and no retries; callers decide refresh and retry policy
//   - No mutations; the feed is read-only here
//   - No logging unless ClientOptions.Logger is set
package sheetfeed
