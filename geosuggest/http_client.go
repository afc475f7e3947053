package geosuggest

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", h.userAgent)

	return h.client.Do(req)
}

// NewHTTPClient wraps a given http.Client with a rate limiter and sets
// a user agent for each request.
//
// The rate limiter only paces outgoing requests of this process, it
// knows nothing about limits of the API itself. Please see
// https://pkg.go.dev/golang.org/x/time/rate to get a meaning of its
// parameters. Zero interval disables pacing.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	limit := rate.Inf

	if rateLimiterInterval > 0 {
		limit = rate.Every(rateLimiterInterval)
	}

	if rateLimitBurst < 1 {
		rateLimitBurst = 1
	}

	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(limit, rateLimitBurst),
	}
}
