package sheetfeed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher defines the read operations of the feed client.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	GetSpreadsheet(ctx context.Context, opts *SpreadsheetOptions) (*Spreadsheet, error)
	GetRows(ctx context.Context, opts *RowOptions) ([]Row, error)
	GetCells(ctx context.Context, opts *CellOptions) (*Cells, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	// DefaultFeedURL is the root of the spreadsheet feeds.
	DefaultFeedURL   = "https://spreadsheets.google.com/feeds/"
	defaultUserAgent = "sheetfeed/0.1"
	defaultTimeout   = 30 * time.Second
	feedVersion      = "3.0"

	corsRejectedPrefix = "CORS request rejected"
)

// ClientOptions configures a Client. The zero value talks to DefaultFeedURL
// in JSON.
type ClientOptions struct {
	FeedURL string
	Format  Format
	// HTTPClient is copied; its redirect policy is replaced so that
	// redirects surface as access failures.
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	// Logger receives debug traces. Nil discards them.
	Logger *slog.Logger
}

// Client talks to the spreadsheet feed API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	format    Format
	decoder   Decoder
	userAgent string
	logger    *slog.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := parseFeedURL(opts.FeedURL)
	if err != nil {
		return nil, err
	}

	var hc http.Client
	if opts.HTTPClient != nil {
		hc = *opts.HTTPClient
	}
	if opts.Timeout > 0 {
		hc.Timeout = opts.Timeout
	} else if hc.Timeout == 0 {
		hc.Timeout = defaultTimeout
	}
	hc.CheckRedirect = noRedirect

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:   base,
		http:      &hc,
		format:    opts.Format,
		decoder:   DecoderFor(opts.Format),
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

// Format reports the wire format the client requests.
func (c *Client) Format() Format {
	return c.format
}

// GetSpreadsheet fetches the worksheets feed of a spreadsheet.
func (c *Client) GetSpreadsheet(ctx context.Context, opts *SpreadsheetOptions) (*Spreadsheet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	cred := normalizeCredential(opts.Credential)
	doc, err := c.fetchFeed(ctx, feedPath(feedWorksheets, opts.Key, ""), cred, nil)
	if err != nil {
		return nil, err
	}
	s, err := mapSpreadsheet(strings.TrimSpace(opts.Key), cred, doc)
	if err != nil {
		return nil, err
	}
	s.client = c
	return s, nil
}

// GetRows fetches the list feed of a worksheet.
func (c *Client) GetRows(ctx context.Context, opts *RowOptions) ([]Row, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	doc, err := c.fetchFeed(ctx, feedPath(feedList, opts.Key, opts.Worksheet), normalizeCredential(opts.Credential), opts.query())
	if err != nil {
		return nil, err
	}
	return mapRows(doc), nil
}

// GetCells fetches the cells feed of a worksheet.
func (c *Client) GetCells(ctx context.Context, opts *CellOptions) (*Cells, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	doc, err := c.fetchFeed(ctx, feedPath(feedCells, opts.Key, opts.Worksheet), normalizeCredential(opts.Credential), opts.query())
	if err != nil {
		return nil, err
	}
	return mapCells(doc), nil
}

// fetchFeed performs one GET against the feed and decodes the body.
func (c *Client) fetchFeed(ctx context.Context, segments []string, cred Credential, query url.Values) (Document, error) {
	reqURL := c.feedURL(segments, cred, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", c.accept())
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching feed", "path", reqURL.Path, "query", reqURL.RawQuery, "authorized", cred != nil)

	var (
		resp *http.Response
		body []byte
	)
	switch cr := cred.(type) {
	case nil:
		resp, body, err = c.do(req)
	case StaticToken:
		req.Header.Set("Authorization", cr.header())
		resp, body, err = c.do(req)
	case Delegate:
		// Delegates return the body first.
		body, resp, err = cr.Requester.Request(ctx, req)
	default:
		return nil, fmt.Errorf("unsupported credential %T", cred)
	}

	if err := classify(resp, body, err); err != nil {
		c.logger.Debug("feed request failed", "path", reqURL.Path, "error", err)
		return nil, err
	}
	return c.decoder.Decode(body)
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, body, nil
}

func (c *Client) feedURL(segments []string, cred Credential, query url.Values) *url.URL {
	visibility, projection := visibilityProjection(cred)
	all := make([]string, 0, len(segments)+2)
	all = append(all, segments...)
	all = append(all, visibility, projection)

	values := url.Values{}
	for k, v := range query {
		values[k] = v
	}
	values.Set("v", feedVersion)
	values.Set("alt", c.format.alt())

	escaped := make([]string, len(all))
	for i, seg := range all {
		escaped[i] = escapeSegment(seg)
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + strings.Join(all, "/")
	u.RawPath = c.baseURL.EscapedPath() + strings.Join(escaped, "/")
	u.RawQuery = values.Encode()
	return &u
}

// escapeSegment keeps a key or worksheet id inside a single path segment.
// Dot segments are escaped too so nothing along the way collapses them.
func escapeSegment(seg string) string {
	if seg == "." || seg == ".." {
		return strings.ReplaceAll(seg, ".", "%2E")
	}
	return url.PathEscape(seg)
}

func (c *Client) accept() string {
	if c.format == FormatXML {
		return "application/atom+xml"
	}
	return "application/json"
}

// classify maps a transport outcome onto the error taxonomy. A nil result
// means body is ready for decoding.
func classify(resp *http.Response, body []byte, err error) error {
	if err != nil {
		if strings.HasPrefix(err.Error(), corsRejectedPrefix) {
			return &AccessDeniedError{Err: err}
		}
		return &TransportError{Err: err}
	}
	if resp == nil {
		return &TransportError{}
	}
	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		return &AccessDeniedError{Err: fmt.Errorf("redirected with status %d", resp.StatusCode)}
	case resp.StatusCode == http.StatusUnauthorized:
		return &InvalidCredentialError{}
	case resp.StatusCode >= 400:
		return &HTTPError{StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}
	if len(body) == 0 {
		return &TransportError{}
	}
	return nil
}

// normalizeCredential treats empty credentials as absent.
func normalizeCredential(cred Credential) Credential {
	switch cr := cred.(type) {
	case StaticToken:
		if strings.TrimSpace(string(cr)) == "" {
			return nil
		}
	case Delegate:
		if cr.Requester == nil {
			return nil
		}
	}
	return cred
}

func parseFeedURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultFeedURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse feed url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
