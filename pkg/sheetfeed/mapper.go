package sheetfeed

import (
	"errors"
	"strconv"
	"strings"
)

// Namespace prefixes of the feed's own elements.
const (
	nsSpreadsheet = "gs"
	nsColumn      = "gsx"
)

// columnPrefixes are the spellings of the custom column namespace: the
// XML-derived form and the JSON form.
var columnPrefixes = []string{nsColumn + ":", nsColumn + "$"}

// errMissingTitle is wrapped by AccessDeniedError when the worksheets feed
// has no title, which is what an unpublished spreadsheet decodes to.
var errMissingTitle = errors.New("worksheets feed has no title")

func mapSpreadsheet(key string, cred Credential, doc Document) (*Spreadsheet, error) {
	title, ok := doc.FieldText("", "title")
	if !ok {
		return nil, &AccessDeniedError{Err: errMissingTitle}
	}
	updated, _ := doc.FieldText("", "updated")

	s := &Spreadsheet{
		Key:        key,
		Credential: cred,
		Title:      title,
		Updated:    parseTime(updated),
	}
	if authors := Entries(doc["author"]); len(authors) > 0 {
		s.Author.Name, _ = authors[0].FieldText("", "name")
		s.Author.Email, _ = authors[0].FieldText("", "email")
	}

	entries := Entries(doc["entry"])
	s.Worksheets = make([]*Worksheet, 0, len(entries))
	for _, entry := range entries {
		s.Worksheets = append(s.Worksheets, mapWorksheet(s, entry))
	}
	return s, nil
}

func mapWorksheet(parent *Spreadsheet, entry Document) *Worksheet {
	id, _ := entry.FieldText("", "id")
	title, _ := entry.FieldText("", "title")
	return &Worksheet{
		ID:          lastSegment(id),
		Title:       title,
		RowCount:    fieldInt(entry, nsSpreadsheet, "rowCount"),
		ColCount:    fieldInt(entry, nsSpreadsheet, "colCount"),
		Spreadsheet: parent,
	}
}

func mapRows(doc Document) []Row {
	entries := Entries(doc["entry"])
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, mapRow(entry))
	}
	return rows
}

// mapRow copies entry metadata first so that column values win when a
// column shares a name with an entry field.
func mapRow(entry Document) Row {
	row := make(Row, len(entry))
	columns := make(map[string]any)
	for key, val := range entry {
		if name, ok := columnName(key); ok {
			columns[name] = val
			continue
		}
		text, ok := Text(val)
		if !ok {
			continue
		}
		if key != "id" && text == "" {
			continue
		}
		row[key] = &text
	}
	for name, val := range columns {
		if isEmptyContainer(val) {
			row[name] = nil
			continue
		}
		text, ok := Text(val)
		if !ok {
			row[name] = nil
			continue
		}
		row[name] = &text
	}
	return row
}

// columnName strips a custom column prefix from key. A bare prefix names
// the column "gsx".
func columnName(key string) (string, bool) {
	for _, prefix := range columnPrefixes {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if name == "" {
			name = nsColumn
		}
		return name, true
	}
	return "", false
}

func mapCells(doc Document) *Cells {
	cells := newCells()
	for _, entry := range Entries(doc["entry"]) {
		descriptor, ok := entry.Field(nsSpreadsheet, "cell")
		if !ok {
			continue
		}
		cell, ok := mapCell(descriptor)
		if !ok {
			continue
		}
		cells.set(cell)
	}
	return cells
}

func mapCell(descriptor any) (Cell, bool) {
	rowText, ok := Attr(descriptor, "row")
	if !ok {
		return Cell{}, false
	}
	colText, ok := Attr(descriptor, "col")
	if !ok {
		return Cell{}, false
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Cell{}, false
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Cell{}, false
	}
	value, _ := Text(descriptor)
	input, _ := Attr(descriptor, "inputValue")
	return Cell{Row: row, Col: col, Value: value, InputValue: input}, true
}

func fieldInt(doc Document, ns, local string) int {
	text, ok := doc.FieldText(ns, local)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}
