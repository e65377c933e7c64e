// Package apiclient is the low-level HTTP layer for the Sales Portal API.
// Requests go through Playwright's request context so API and browser tests
// share one transport and one trace.
package apiclient

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// RequestOptions describes one API call.
type RequestOptions struct {
	Method  string
	URL     string
	Body    any
	Headers map[string]string
	Query   map[string]string
}

// Response is a fully read API response.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Header returns a response header value, "" when absent.
func (r *Response) Header(name string) string {
	return r.Headers[name]
}

// Client sends API requests. Implementations must return an error only for
// transport failures; HTTP error statuses come back as normal responses.
type Client interface {
	Do(opts RequestOptions) (*Response, error)
}

// Logf is a log sink compatible with testing.T.Logf.
type Logf func(format string, args ...any)

// PlaywrightClient implements Client over a Playwright APIRequestContext.
// When Log is set, every request and response is logged with secrets masked.
type PlaywrightClient struct {
	request playwright.APIRequestContext
	Log     Logf
}

// New builds a client over an existing request context.
func New(request playwright.APIRequestContext) *PlaywrightClient {
	return &PlaywrightClient{request: request}
}

// NewFromPlaywright creates a fresh request context from a running Playwright
// driver. Call Dispose when done.
func NewFromPlaywright(pw *playwright.Playwright) (*PlaywrightClient, error) {
	request, err := pw.Request.NewContext()
	if err != nil {
		return nil, fmt.Errorf("create api request context: %w", err)
	}
	return &PlaywrightClient{request: request}, nil
}

// Dispose releases the underlying request context.
func (c *PlaywrightClient) Dispose() error {
	return c.request.Dispose()
}

func (c *PlaywrightClient) Do(opts RequestOptions) (*Response, error) {
	fetchOpts := playwright.APIRequestContextFetchOptions{
		Method: playwright.String(opts.Method),
	}
	if len(opts.Headers) > 0 {
		fetchOpts.Headers = opts.Headers
	}
	if opts.Body != nil {
		fetchOpts.Data = opts.Body
	}
	if len(opts.Query) > 0 {
		params := make(map[string]interface{}, len(opts.Query))
		for k, v := range opts.Query {
			params[k] = v
		}
		fetchOpts.Params = params
	}

	c.logRequest(opts)

	resp, err := c.request.Fetch(opts.URL, fetchOpts)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opts.Method, opts.URL, err)
	}
	defer resp.Dispose()

	body, err := resp.Body()
	if err != nil {
		return nil, fmt.Errorf("read body of %s %s: %w", opts.Method, opts.URL, err)
	}

	out := &Response{
		Status:  resp.Status(),
		Headers: resp.Headers(),
		Body:    body,
	}
	c.logResponse(opts, out)
	return out, nil
}

func (c *PlaywrightClient) logRequest(opts RequestOptions) {
	if c.Log == nil {
		return
	}
	if opts.Body == nil {
		c.Log("--> %s %s", opts.Method, opts.URL)
		return
	}
	raw, err := json.Marshal(opts.Body)
	if err != nil {
		c.Log("--> %s %s (unencodable body)", opts.Method, opts.URL)
		return
	}
	c.Log("--> %s %s %s", opts.Method, opts.URL, MaskSecrets(string(raw)))
}

func (c *PlaywrightClient) logResponse(opts RequestOptions, resp *Response) {
	if c.Log == nil {
		return
	}
	c.Log("<-- %d %s %s %s", resp.Status, opts.Method, opts.URL, MaskSecrets(string(resp.Body)))
}
