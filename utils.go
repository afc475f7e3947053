package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/9seconds/geosuggest/config"
	"github.com/9seconds/geosuggest/geosuggest"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeHTTPClient(conf *config.Config, transport http.RoundTripper) geosuggest.HTTPClient {
	httpClient := &http.Client{
		Timeout:   conf.GetTimeout(),
		Transport: transport,
	}

	return geosuggest.NewHTTPClient(httpClient,
		conf.GetUserAgent(),
		conf.GetRateLimitInterval(),
		conf.GetRateLimitBurst())
}

// describeError prefixes an error with its kind so a user can tell
// a broken network from a broken response.
func describeError(err error) string {
	var (
		transportErr *geosuggest.TransportError
		decodeErr    *geosuggest.DecodeError
	)

	switch {
	case errors.Is(err, geosuggest.ErrCancelled):
		return fmt.Sprintf("OperationCancelled: %v", err)
	case errors.As(err, &transportErr):
		return fmt.Sprintf("TransportFailure: %v", err)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("DecodeFailure: %v", err)
	case errors.Is(err, geosuggest.ErrInvalidArgument):
		return fmt.Sprintf("InvalidArgument: %v", err)
	}

	return err.Error()
}
