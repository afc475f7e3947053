package geosuggest

import "net/http"

// HTTPClient is a transport used by Client. It has to be safe for
// concurrent use. *http.Client satisfies this interface.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger receives events of the Client. Implementations must not
// block.
type Logger interface {
	RequestSent(url string)
	RequestFailed(err error)
	ResponseReceived(statusCode int, results int)
}

type noopLogger struct{}

func (noopLogger) RequestSent(string)        {}
func (noopLogger) RequestFailed(error)       {}
func (noopLogger) ResponseReceived(int, int) {}
