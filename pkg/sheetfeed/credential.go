package sheetfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// Credential authorizes requests against private spreadsheets. It is either
// a StaticToken or a Delegate.
type Credential interface {
	credential()
}

// StaticToken is a legacy auth token sent as a static Authorization header.
type StaticToken string

func (StaticToken) credential() {}

func (t StaticToken) header() string {
	return "GoogleLogin auth=" + string(t)
}

// Requester performs an authenticated request on the client's behalf. The
// body is returned ahead of the response; the client reorders them.
type Requester interface {
	Request(ctx context.Context, req *http.Request) (body []byte, resp *http.Response, err error)
}

// RequesterFunc adapts a function to Requester.
type RequesterFunc func(ctx context.Context, req *http.Request) ([]byte, *http.Response, error)

// Request calls f.
func (f RequesterFunc) Request(ctx context.Context, req *http.Request) ([]byte, *http.Response, error) {
	return f(ctx, req)
}

// Delegate hands the whole request to a Requester that attaches its own
// authorization.
type Delegate struct {
	Requester Requester
}

func (Delegate) credential() {}

// OAuth2 returns a Delegate that sends requests through an oauth2 transport
// carrying bearer tokens from ts. Redirects are not followed.
func OAuth2(ts oauth2.TokenSource) Delegate {
	return OAuth2WithClient(ts, nil)
}

// OAuth2WithClient is OAuth2 with an explicit base client whose transport and
// timeout are reused.
func OAuth2WithClient(ts oauth2.TokenSource, base *http.Client) Delegate {
	var (
		transport http.RoundTripper
		cl        http.Client
	)
	if base != nil {
		cl = *base
		transport = base.Transport
	}
	cl.Transport = &oauth2.Transport{Source: ts, Base: transport}
	cl.CheckRedirect = noRedirect
	return Delegate{Requester: oauth2Requester{client: &cl}}
}

type oauth2Requester struct {
	client *http.Client
}

func (r oauth2Requester) Request(ctx context.Context, req *http.Request) ([]byte, *http.Response, error) {
	resp, err := r.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, fmt.Errorf("read response: %w", err)
	}
	return body, resp, nil
}

func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}
