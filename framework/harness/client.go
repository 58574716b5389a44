package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/toolshop-qa/api-test-harness/framework"
	"github.com/toolshop-qa/api-test-harness/framework/helpers"
	o "github.com/toolshop-qa/api-test-harness/framework/opt"
)

// DefaultTimeout is used when a client is created with a zero timeout.
const DefaultTimeout = 5 * time.Second

// Client sends requests to the API under test. Every request has a timeout. A response with
// any status code is returned as a Response; only a failure to get a response is an error.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     framework.Logger
}

// NewClient creates a Client for the API at baseURL. Paths passed to Do are appended to it.
func NewClient(baseURL string, timeout time.Duration, logger framework.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			// Redirects are part of the contract under test, so they are returned as-is.
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
		logger: logger,
	}
}

// WithLogger returns a copy of the client that logs to a different logger. Scenarios use it
// to send request lines to the debug output of their own test scope.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	copied := *c
	if logger == nil {
		logger = framework.NullLogger()
	}
	copied.logger = logger
	return &copied
}

// BaseURL returns the base URL of the API.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the default per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

type requestParams struct {
	body    []byte
	hasBody bool
	query   url.Values
	header  http.Header
	timeout o.Maybe[time.Duration]
}

// RequestOption is an option for Client.Do.
type RequestOption helpers.ConfigOption[requestParams]

type requestOptionFunc func(*requestParams) error

func (f requestOptionFunc) Configure(p *requestParams) error { return f(p) }

// JSONBody marshals value as the request body and sets the JSON content type. Use RawBody to
// send something that encoding/json would not produce.
func JSONBody(value interface{}) RequestOption {
	return requestOptionFunc(func(p *requestParams) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("cannot marshal request body: %w", err)
		}
		p.body, p.hasBody = data, true
		p.header.Set("Content-Type", "application/json")
		return nil
	})
}

// RawBody sends the bytes exactly as given, with a JSON content type.
func RawBody(data []byte) RequestOption {
	return requestOptionFunc(func(p *requestParams) error {
		p.body, p.hasBody = data, true
		p.header.Set("Content-Type", "application/json")
		return nil
	})
}

// Query adds a query string parameter.
func Query(name, value string) RequestOption {
	return requestOptionFunc(func(p *requestParams) error {
		p.query.Add(name, value)
		return nil
	})
}

// Header sets a request header.
func Header(name, value string) RequestOption {
	return requestOptionFunc(func(p *requestParams) error {
		p.header.Set(name, value)
		return nil
	})
}

// BearerToken sets the Authorization header.
func BearerToken(token string) RequestOption {
	return Header("Authorization", "Bearer "+token)
}

// Timeout overrides the client's timeout for one request. A non-positive value is ignored.
func Timeout(timeout time.Duration) RequestOption {
	return requestOptionFunc(func(p *requestParams) error {
		p.timeout = o.SomeIf(timeout > 0, timeout)
		return nil
	})
}

// Do sends one request. path is relative to the base URL unless it is an absolute URL.
//
// The returned error is a *TransportError if no response was received, or a plain error if
// the request could not be built.
func (c *Client) Do(method, path string, options ...RequestOption) (Response, error) {
	params := requestParams{
		query:  make(url.Values),
		header: make(http.Header),
	}
	params.header.Set("Accept", "application/json")
	if err := helpers.ApplyOptions(&params, options...); err != nil {
		return Response{}, err
	}

	fullURL, err := c.resolve(path, params.query)
	if err != nil {
		return Response{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), params.timeout.OrElse(c.timeout))
	defer cancel()

	var body io.Reader
	if params.hasBody {
		body = bytes.NewReader(params.body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return Response{}, fmt.Errorf("cannot create request %s %s: %w", method, fullURL, err)
	}
	req.Header = params.header

	if params.hasBody {
		c.logger.Printf("%s %s %s", method, fullURL, helpers.TruncatedString(string(params.body), 500))
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Printf("%s %s failed after %s: %s", method, fullURL, elapsed.Round(time.Millisecond), err)
		return Response{}, &TransportError{Method: method, URL: fullURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &TransportError{Method: method, URL: fullURL, Err: fmt.Errorf("reading body: %w", err)}
	}

	result := Response{
		Method:     method,
		URL:        fullURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       respBody,
		Elapsed:    elapsed,
	}
	c.logger.Printf("%s", result)
	if len(respBody) != 0 {
		c.logger.Printf("  body: %s", helpers.TruncatedString(string(respBody), 500))
	}
	return result, nil
}

// Get is a shortcut for Do("GET", ...).
func (c *Client) Get(path string, options ...RequestOption) (Response, error) {
	return c.Do(http.MethodGet, path, options...)
}

// Post is a shortcut for Do("POST", ...).
func (c *Client) Post(path string, options ...RequestOption) (Response, error) {
	return c.Do(http.MethodPost, path, options...)
}

// Put is a shortcut for Do("PUT", ...).
func (c *Client) Put(path string, options ...RequestOption) (Response, error) {
	return c.Do(http.MethodPut, path, options...)
}

// Delete is a shortcut for Do("DELETE", ...).
func (c *Client) Delete(path string, options ...RequestOption) (Response, error) {
	return c.Do(http.MethodDelete, path, options...)
}

func (c *Client) resolve(path string, query url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		raw = c.baseURL + path
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid request URL %q: %w", raw, err)
	}
	if len(query) != 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
