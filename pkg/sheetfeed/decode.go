package sheetfeed

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects the representation requested from the feed and the decoder
// used for the response.
type Format int

const (
	// FormatJSON is the flattened JSON representation (alt=json).
	FormatJSON Format = iota
	// FormatXML is the legacy Atom representation (alt=atom).
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	default:
		return "json"
	}
}

// ParseFormat maps a configuration value onto a Format. Empty means JSON.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "xml", "atom":
		return FormatXML, nil
	default:
		return FormatJSON, fmt.Errorf("unknown feed format %q", value)
	}
}

func (f Format) alt() string {
	if f == FormatXML {
		return "atom"
	}
	return "json"
}

// Decoder turns a raw feed response body into the feed Document.
type Decoder interface {
	Decode(body []byte) (Document, error)
}

// DecoderFor returns the decoder for f.
func DecoderFor(f Format) Decoder {
	if f == FormatXML {
		return xmlDecoder{}
	}
	return jsonDecoder{}
}

type jsonDecoder struct{}

func (jsonDecoder) Decode(body []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{Format: FormatJSON, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Format: FormatJSON, Err: errors.New("trailing data after feed object")}
	}

	doc, ok := normalizeJSON(raw).(Document)
	if !ok {
		return nil, &DecodeError{Format: FormatJSON, Err: errors.New("feed is not a JSON object")}
	}
	if feed, ok := doc["feed"].(Document); ok {
		return feed, nil
	}
	return doc, nil
}

// normalizeJSON copies a decoded JSON value into Document form. Scalars become
// strings and nulls are dropped.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		doc := make(Document, len(t))
		for k, child := range t {
			if n := normalizeJSON(child); n != nil {
				doc[k] = n
			}
		}
		return doc
	case []any:
		list := make([]any, 0, len(t))
		for _, child := range t {
			if n := normalizeJSON(child); n != nil {
				list = append(list, n)
			}
		}
		return list
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	}
	return nil
}

// knownNamespaces maps feed namespace URLs to their customary prefixes. The
// document's own xmlns declarations take precedence.
var knownNamespaces = map[string]string{
	"http://www.w3.org/2005/Atom":                          "",
	"http://a9.com/-/spec/opensearchrss/1.0/":              "openSearch",
	"http://a9.com/-/spec/opensearch/1.1/":                 "openSearch",
	"http://schemas.google.com/spreadsheets/2006":          "gs",
	"http://schemas.google.com/spreadsheets/2006/extended": "gsx",
	"http://schemas.google.com/g/2005":                     "gd",
	"http://schemas.google.com/gdata/batch":                "batch",
	"http://www.w3.org/XML/1998/namespace":                 "xml",
}

type xmlDecoder struct{}

type xmlNode struct {
	name  string
	attrs Document
	doc   Document
	text  strings.Builder
}

func (n *xmlNode) add(name string, v any) {
	existing, ok := n.doc[name]
	if !ok {
		n.doc[name] = v
		return
	}
	if list, ok := existing.([]any); ok {
		n.doc[name] = append(list, v)
		return
	}
	n.doc[name] = []any{existing, v}
}

// value collapses the node: text-only elements become strings, empty
// elements become an empty Document.
func (n *xmlNode) value() any {
	text := n.text.String()
	hasText := strings.TrimSpace(text) != ""
	if len(n.doc) > 0 {
		text = strings.TrimSpace(text)
	}
	if len(n.attrs) == 0 && len(n.doc) == 0 {
		if hasText {
			return text
		}
		return Document{}
	}
	if len(n.attrs) > 0 {
		n.doc[xmlAttrKey] = n.attrs
	}
	if hasText {
		n.doc[xmlTextKey] = text
	}
	return n.doc
}

func (xmlDecoder) Decode(body []byte) (Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	prefixes := make(map[string]string, len(knownNamespaces))
	for url, prefix := range knownNamespaces {
		prefixes[url] = prefix
	}

	var (
		stack []*xmlNode
		root  any
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DecodeError{Format: FormatXML, Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlNode{doc: Document{}}
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == "xmlns":
					prefixes[a.Value] = a.Name.Local
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					prefixes[a.Value] = ""
				}
			}
			node.name = qualify(t.Name, prefixes)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				if node.attrs == nil {
					node.attrs = Document{}
				}
				node.attrs[qualify(a.Name, prefixes)] = a.Value
			}
			stack = append(stack, node)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			v := node.value()
			if len(stack) == 0 {
				root = v
				continue
			}
			stack[len(stack)-1].add(node.name, v)
		}
	}

	switch r := root.(type) {
	case Document:
		return r, nil
	case string:
		return Document{xmlTextKey: r}, nil
	default:
		return nil, &DecodeError{Format: FormatXML, Err: errors.New("no root element")}
	}
}

func qualify(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	prefix, ok := prefixes[name.Space]
	if !ok {
		prefix = name.Space
	}
	if prefix == "" {
		return name.Local
	}
	return prefix + ":" + name.Local
}
