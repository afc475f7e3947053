package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/9seconds/geosuggest/geosuggest"
)

// run returns a process exit code. It is non-zero only if command line
// is rejected. Any failure is printed to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, transport http.RoundTripper) int {
	cmd := newCLI(stderr)

	opts, err := cmd.parse(args)
	if err != nil {
		fmt.Fprintln(stdout, describeError(err))

		return 1
	}

	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{})
	logger.SetLevel(log.GetLevel())

	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}

	client := geosuggest.NewClient(makeHTTPClient(opts.conf, transport),
		opts.conf.APIKey,
		geosuggest.WithEndpoint(opts.conf.GetEndpoint()),
		geosuggest.WithLogger(newLogger(logger)))

	if opts.dryRun {
		fmt.Fprintln(stdout, client.URL(opts.request))

		return 0
	}

	resp, err := client.Suggest(ctx, opts.request)
	if err != nil {
		fmt.Fprintln(stdout, describeError(err))

		return 0
	}

	encoder := json.NewEncoder(stdout)

	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(resp); err != nil {
		fmt.Fprintln(stdout, describeError(err))
	}

	return 0
}
