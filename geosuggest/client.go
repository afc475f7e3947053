package geosuggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// DefaultEndpoint is an URL of the Yandex Maps geosuggest API.
const DefaultEndpoint = "https://suggest-maps.yandex.ru/v1/suggest"

// MaxResponseSize is a limit of a response body. Bigger responses
// are rejected without being decoded.
const MaxResponseSize = 10 * 1024 * 1024

const redactedAPIKey = "xxx"

// Client makes requests to the suggest API. Client has no mutable
// state so it is safe to use it from many goroutines.
type Client struct {
	apiKey   string
	endpoint string
	client   HTTPClient
	logger   Logger
}

// Option tunes a Client on construction.
type Option func(*Client)

// WithEndpoint replaces DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// URL returns an URL which is going to be requested for a given
// request.
func (c *Client) URL(req *Request) string {
	return c.endpoint + "?" + req.Encode(c.apiKey).Encode()
}

// Suggest makes a single GET request and returns decoded suggestions.
//
// Errors are *TransportError if API is not reachable or responds with
// non-successful status code, *DecodeError if response is not
// a valid JSON of expected shape and ErrCancelled if ctx was closed
// before everything is done. A partial result is never returned.
func (c *Client) Suggest(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, cancelledError{err}
	}

	params := req.Encode(c.apiKey)
	requestURL := c.endpoint + "?" + params.Encode()

	params.Set(ParamAPIKey, redactedAPIKey)
	c.logger.RequestSent(c.endpoint + "?" + params.Encode())

	resp, err := c.do(ctx, requestURL)
	if err != nil {
		c.logger.RequestFailed(err)

		return nil, err
	}

	return resp, nil
}

func (c *Client) do(ctx context.Context, requestURL string) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("cannot build a request: %w", err)}
	}

	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, 0, fmt.Errorf("cannot send a request: %w", err))
	}

	defer flushResponse(httpResp.Body)

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, c.transportError(ctx, httpResp.StatusCode,
			fmt.Errorf("cannot read a response: %w", err))
	}

	if len(body) > MaxResponseSize {
		return nil, &TransportError{
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("response is larger than %d bytes", MaxResponseSize),
		}
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		tErr := &TransportError{
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", httpResp.Status),
		}

		if gjson.ValidBytes(body) {
			tErr.Message = gjson.GetBytes(body, "message").String()
		}

		c.logger.ResponseReceived(httpResp.StatusCode, 0)

		return nil, tErr
	}

	resp, err := decodeResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.ResponseReceived(httpResp.StatusCode, len(resp.Results))

	return resp, nil
}

func (c *Client) transportError(ctx context.Context, statusCode int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return cancelledError{ctxErr}
	}

	return &TransportError{
		StatusCode: statusCode,
		Err:        err,
	}
}

func decodeResponse(body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{Err: errors.New("malformed json")}
	}

	if !gjson.ParseBytes(body).IsObject() {
		return nil, &DecodeError{Err: errors.New("json object is expected")}
	}

	resp := &Response{}

	if err := json.Unmarshal(body, resp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return resp, nil
}

func flushResponse(body io.ReadCloser) {
	io.Copy(io.Discard, body) // nolint: errcheck
	body.Close()
}

// NewClient creates a new client for a given api key. The api key is
// sent as a query parameter with each request.
func NewClient(client HTTPClient, apiKey string, opts ...Option) *Client {
	rv := &Client{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		client:   client,
		logger:   noopLogger{},
	}

	for _, opt := range opts {
		opt(rv)
	}

	return rv
}
