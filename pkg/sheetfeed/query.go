package sheetfeed

import (
	"net/url"
	"strconv"
	"strings"
)

// Feed kinds, used as the first path segment.
const (
	feedWorksheets = "worksheets"
	feedList       = "list"
	feedCells      = "cells"
)

// SpreadsheetOptions configures GetSpreadsheet.
type SpreadsheetOptions struct {
	Key        string
	Credential Credential
}

// RowOptions configures list feed requests.
type RowOptions struct {
	Key        string
	Worksheet  string
	Credential Credential

	// Start is the 1-based index of the first row returned.
	Start int
	// Num caps the number of rows returned.
	Num     int
	OrderBy string
	Reverse bool
	// SQ is a structured query evaluated by the feed, e.g. "age>25".
	SQ string
}

// CellOptions configures cells feed requests.
type CellOptions struct {
	Key        string
	Worksheet  string
	Credential Credential

	// Range is an A1 or R1C1 range such as "A1:B10" or "R1C1:R1C2".
	Range  string
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

func (o *SpreadsheetOptions) validate() error {
	if o == nil {
		return &InvalidArgumentError{Reason: msgInvalidArguments}
	}
	return validateKey(o.Key)
}

func (o *RowOptions) validate() error {
	if o == nil {
		return &InvalidArgumentError{Reason: msgInvalidArguments}
	}
	if err := validateKey(o.Key); err != nil {
		return err
	}
	return validateWorksheet(o.Worksheet)
}

func (o *CellOptions) validate() error {
	if o == nil {
		return &InvalidArgumentError{Reason: msgInvalidArguments}
	}
	if err := validateKey(o.Key); err != nil {
		return err
	}
	return validateWorksheet(o.Worksheet)
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return &InvalidArgumentError{Reason: msgKeyMissing}
	}
	return nil
}

func validateWorksheet(id string) error {
	if strings.TrimSpace(id) == "" {
		return &InvalidArgumentError{Reason: msgWorksheetMissing}
	}
	return nil
}

func (o *RowOptions) query() url.Values {
	values := url.Values{}
	if o.Start > 0 {
		values.Set("start-index", strconv.Itoa(o.Start))
	}
	if o.Num > 0 {
		values.Set("max-results", strconv.Itoa(o.Num))
	}
	if orderBy := strings.TrimSpace(o.OrderBy); orderBy != "" {
		values.Set("orderby", orderBy)
	}
	if o.Reverse {
		values.Set("reverse", "true")
	}
	if sq := strings.TrimSpace(o.SQ); sq != "" {
		values.Set("sq", sq)
	}
	return values
}

func (o *CellOptions) query() url.Values {
	values := url.Values{}
	if r := strings.TrimSpace(o.Range); r != "" {
		values.Set("range", r)
	}
	if o.MinRow > 0 {
		values.Set("min-row", strconv.Itoa(o.MinRow))
	}
	if o.MaxRow > 0 {
		values.Set("max-row", strconv.Itoa(o.MaxRow))
	}
	if o.MinCol > 0 {
		values.Set("min-col", strconv.Itoa(o.MinCol))
	}
	if o.MaxCol > 0 {
		values.Set("max-col", strconv.Itoa(o.MaxCol))
	}
	return values
}

// feedPath returns the leading path segments for a feed. worksheet is
// omitted for the worksheets feed.
func feedPath(kind, key, worksheet string) []string {
	segments := []string{kind, strings.TrimSpace(key)}
	if worksheet = strings.TrimSpace(worksheet); worksheet != "" {
		segments = append(segments, worksheet)
	}
	return segments
}

// visibilityProjection picks the feed scope from credential presence.
func visibilityProjection(cred Credential) (string, string) {
	if cred == nil {
		return "public", "values"
	}
	return "private", "full"
}
