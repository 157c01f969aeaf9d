package sheetfeed

import (
	"strings"
)

// Reserved keys used inside a Document.
const (
	// textKey holds text content in the flattened JSON form.
	textKey = "$t"
	// xmlTextKey holds element text decoded from XML.
	xmlTextKey = "_"
	// xmlAttrKey holds element attributes decoded from XML.
	xmlAttrKey = "$"
)

// Document is the generic tree both feed formats decode into. Values are
// string, []any or Document.
type Document map[string]any

// Field returns the value stored under ns:local or ns$local. An empty ns
// looks up local as-is.
func (d Document) Field(ns, local string) (any, bool) {
	if d == nil {
		return nil, false
	}
	if ns == "" {
		v, ok := d[local]
		return v, ok
	}
	for _, sep := range namespaceSeparators {
		if v, ok := d[ns+sep+local]; ok {
			return v, true
		}
	}
	return nil, false
}

// FieldText is Field followed by Text.
func (d Document) FieldText(ns, local string) (string, bool) {
	v, ok := d.Field(ns, local)
	if !ok {
		return "", false
	}
	return Text(v)
}

// namespaceSeparators are the spellings seen between a namespace prefix and
// a local name: "gs:cell" in XML-derived documents, "gs$cell" in JSON.
var namespaceSeparators = []string{"$", ":"}

// Text returns the text node of v. A bare string is its own text; a Document
// carries it under "$t" or "_".
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case Document:
		for _, k := range []string{textKey, xmlTextKey} {
			if s, ok := t[k].(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// Attr returns the named attribute of v, either flattened into the element
// (JSON) or nested under the attribute key (XML).
func Attr(v any, name string) (string, bool) {
	doc, ok := v.(Document)
	if !ok {
		return "", false
	}
	if attrs, ok := doc[xmlAttrKey].(Document); ok {
		if s, ok := attrs[name].(string); ok {
			return s, true
		}
	}
	if s, ok := doc[name].(string); ok {
		return s, true
	}
	return "", false
}

// Entries normalizes v to a list of documents. The feed omits the wrapping
// list when exactly one entry exists.
func Entries(v any) []Document {
	switch t := v.(type) {
	case nil:
		return nil
	case Document:
		return []Document{t}
	case []any:
		out := make([]Document, 0, len(t))
		for _, item := range t {
			if doc, ok := item.(Document); ok {
				out = append(out, doc)
			}
		}
		return out
	}
	return nil
}

func isEmptyContainer(v any) bool {
	switch t := v.(type) {
	case Document:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// lastSegment returns the part of a URL-like identifier after the final "/".
func lastSegment(id string) string {
	id = strings.TrimRight(strings.TrimSpace(id), "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
