// Package api is the HTTP adapter for the online-shop back-office API.
//
// A Client is bound at construction to a base URL and a token source; every
// request it issues is JSON and carries "Authorization: Bearer <token>" when a
// token is held. The fluent builder is also usable standalone:
//
//	resp, err := api.Get("https://server.aptech.io/online-shop/categories").
//	    Bearer(token).
//	    Send()
//
//	var cats []models.Category
//	err = resp.JSON(&cats)
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	gohttp "net/http"
	"time"

	"github.com/shashiranjanraj/shopctl/config"
)

// GenericError is shown when the server's error body carries no usable message.
const GenericError = "Something went wrong"

// defaultTransport is the connection-pooled transport used in production.
// Tests swap DefaultClient.Transport to intercept calls.
var defaultTransport = &gohttp.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// DefaultClient is the shared HTTP client behind every outgoing request.
//
//	api.DefaultClient.Transport = myMockTransport
//	defer api.ResetTransport()
var DefaultClient = &gohttp.Client{
	Transport: defaultTransport,
}

// ResetTransport restores the production transport on DefaultClient.
func ResetTransport() {
	DefaultClient.Transport = defaultTransport
}

// TokenSource yields the current bearer token; an empty string means the call
// goes out unauthenticated (the login endpoint, or a bypass session).
type TokenSource interface {
	Token() string
}

// ------------------- Client -------------------

// Client issues authenticated JSON requests against one API base URL.
// The token source is explicit: it is handed over at construction and owns
// its own lifecycle (login populates it, logout clears it).
type Client struct {
	base   string
	tokens TokenSource
}

// NewClient binds a client to baseURL and a token source. A nil source means
// every request is anonymous.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{base: baseURL, tokens: tokens}
}

// BaseURL returns the bound API root.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) request(ctx context.Context, method, path string) *Request {
	r := newRequest(method, c.base+path).WithContext(ctx)
	if c.tokens != nil {
		if t := c.tokens.Token(); t != "" {
			r.Bearer(t)
		}
	}
	return r
}

// Get issues GET <base><path>.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, gohttp.MethodGet, path).Send()
}

// Post issues POST <base><path> with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.request(ctx, gohttp.MethodPost, path).Body(body).Send()
}

// Patch issues PATCH <base><path> with a partial JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.request(ctx, gohttp.MethodPatch, path).Body(body).Send()
}

// Delete issues DELETE <base><path>.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, gohttp.MethodDelete, path).Send()
}

// ------------------- Request -------------------

// Request is a fluent HTTP request builder.
type Request struct {
	method  string
	url     string
	headers map[string]string
	body    interface{}
	timeout time.Duration
	ctx     context.Context
}

// Get starts a GET request.
func Get(url string) *Request { return newRequest(gohttp.MethodGet, url) }

// Post starts a POST request.
func Post(url string) *Request { return newRequest(gohttp.MethodPost, url) }

// Patch starts a PATCH request.
func Patch(url string) *Request { return newRequest(gohttp.MethodPatch, url) }

// Delete starts a DELETE request.
func Delete(url string) *Request { return newRequest(gohttp.MethodDelete, url) }

func newRequest(method, url string) *Request {
	return &Request{
		method:  method,
		url:     url,
		headers: map[string]string{"Content-Type": "application/json", "Accept": "application/json"},
		timeout: config.HTTPTimeout(),
		ctx:     context.Background(),
	}
}

// Header adds a single header to the request.
func (r *Request) Header(key, value string) *Request {
	r.headers[key] = value
	return r
}

// Bearer sets the Authorization: Bearer <token> header.
func (r *Request) Bearer(token string) *Request {
	return r.Header("Authorization", "Bearer "+token)
}

// Body sets the request body, marshalled to JSON on send.
func (r *Request) Body(v interface{}) *Request {
	r.body = v
	return r
}

// Timeout overrides the transport timeout for this request.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// WithContext sets a custom context.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// Send executes the request and returns a Response. There is no retry: a CRUD
// call either lands once or surfaces its transport error.
func (r *Request) Send() (*Response, error) {
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("api: marshal body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()

	req, err := gohttp.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", r.method, r.url, err)
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("api: read body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Raw:        raw,
	}, nil
}

// ------------------- Response -------------------

// Response wraps the HTTP response with convenience methods.
type Response struct {
	StatusCode int
	Headers    gohttp.Header
	Raw        []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into dest.
func (r *Response) JSON(dest interface{}) error {
	if err := json.Unmarshal(r.Raw, dest); err != nil {
		return fmt.Errorf("api: decode JSON: %w", err)
	}
	return nil
}

// errorBody matches the server's error shape. The message field is usually an
// array of strings but some endpoints return a single string.
type errorBody struct {
	Message json.RawMessage `json:"message"`
}

// FirstMessage extracts the first server-reported message from an error body.
// When the shape is absent or unreadable it falls back to GenericError, so the
// result is always safe to show to the user verbatim.
func (r *Response) FirstMessage() string {
	var body errorBody
	if err := json.Unmarshal(r.Raw, &body); err != nil || len(body.Message) == 0 {
		return GenericError
	}

	var many []string
	if err := json.Unmarshal(body.Message, &many); err == nil {
		if len(many) > 0 && many[0] != "" {
			return many[0]
		}
		return GenericError
	}

	var one string
	if err := json.Unmarshal(body.Message, &one); err == nil && one != "" {
		return one
	}
	return GenericError
}
