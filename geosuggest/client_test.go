package geosuggest_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/9seconds/geosuggest/geosuggest"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const fullResponse = `{
  "suggest_reqid": "1697018532123456-1234567890",
  "results": [
    {
      "title": {"text": "Red Square", "hl": [{"begin": 0, "end": 3}]},
      "subtitle": {"text": "Moscow, Russia"},
      "tags": ["square"],
      "distance": {"text": "1.2 km", "value": 1234.5},
      "address": {
        "formatted_address": "Russia, Moscow, Red Square",
        "component": [
          {"name": "Russia", "kind": ["COUNTRY"]},
          {"name": "Moscow", "kind": ["PROVINCE", "LOCALITY"]}
        ]
      },
      "uri": "ymapsbm1://geo?data=abc"
    },
    {
      "title": {"text": "Red Gates"}
    }
  ]
}`

type ClientTestSuite struct {
	MockedClientTestSuite
}

func (suite *ClientTestSuite) TestOk() {
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(http.StatusOK, fullResponse))

	resp, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

	suite.NoError(err)
	suite.Equal("1697018532123456-1234567890", resp.RequestID)
	suite.Len(resp.Results, 2)

	item := resp.Results[0]

	suite.Equal("Red Square", item.Title.Text)
	suite.Equal([]geosuggest.Highlight{{Start: 0, End: 3}}, item.Title.Highlights)
	suite.Equal("Moscow, Russia", item.Subtitle.Text)
	suite.Empty(item.Subtitle.Highlights)
	suite.Equal([]string{"square"}, item.Tags)
	suite.Equal("1.2 km", item.Distance.Text)
	suite.InDelta(1234.5, item.Distance.Value, 1e-6)
	suite.Equal("Russia, Moscow, Red Square", item.Address.FormattedAddress)
	suite.Equal([]geosuggest.AddressComponent{
		{Name: "Russia", Kinds: []string{"COUNTRY"}},
		{Name: "Moscow", Kinds: []string{"PROVINCE", "LOCALITY"}},
	}, item.Address.Components)
	suite.Equal("ymapsbm1://geo?data=abc", item.URI)

	item = resp.Results[1]

	suite.Equal("Red Gates", item.Title.Text)
	suite.Nil(item.Subtitle)
	suite.Nil(item.Distance)
	suite.Nil(item.Address)
	suite.Empty(item.URI)

	suite.logger.AssertCalled(suite.T(), "ResponseReceived", http.StatusOK, 2)
}

func (suite *ClientTestSuite) TestQuery() {
	var rawQuery, userAgent, accept string

	httpmock.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			rawQuery = req.URL.RawQuery
			userAgent = req.Header.Get("User-Agent")
			accept = req.Header.Get("Accept")

			return httpmock.NewStringResponse(http.StatusOK, `{"results": []}`), nil
		})

	req := geosuggest.NewRequest("red square")
	req.SearchCenter = &geosuggest.Coordinate{Longitude: 37.5, Latitude: 55.75}
	req.Types = []geosuggest.ObjectType{geosuggest.Biz, geosuggest.Metro}

	resp, err := suite.client.Suggest(context.Background(), req)

	suite.NoError(err)
	suite.Empty(resp.Results)
	suite.Equal(
		"apikey=apikey&text=red+square&results=7&highlight=1&spn=0.1%2C0.1&ll=37.5%2C55.75&types=biz%2Cmetro",
		rawQuery)
	suite.Equal("test-agent", userAgent)
	suite.Equal("application/json", accept)
	suite.Equal(testEndpoint+"?"+rawQuery, suite.client.URL(req))
}

func (suite *ClientTestSuite) TestLoggedURLHasNoAPIKey() {
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{"results": []}`))

	_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("a"))

	suite.NoError(err)
	suite.logger.AssertCalled(suite.T(), "RequestSent",
		testEndpoint+"?apikey=xxx&text=a&results=7&highlight=1&spn=0.1%2C0.1")
}

func (suite *ClientTestSuite) TestServerError() {
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(http.StatusInternalServerError, `{[`))

	_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

	var transportErr *geosuggest.TransportError
	var decodeErr *geosuggest.DecodeError

	suite.True(errors.As(err, &transportErr))
	suite.False(errors.As(err, &decodeErr))
	suite.Equal(http.StatusInternalServerError, transportErr.StatusCode)
	suite.logger.AssertCalled(suite.T(), "RequestFailed", mock.Anything)
}

func (suite *ClientTestSuite) TestForbiddenMessage() {
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(http.StatusForbidden,
			`{"statusCode": 403, "error": "Forbidden", "message": "Invalid key"}`))

	_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

	var transportErr *geosuggest.TransportError

	suite.True(errors.As(err, &transportErr))
	suite.Equal(http.StatusForbidden, transportErr.StatusCode)
	suite.Equal("Invalid key", transportErr.Message)
	suite.Contains(err.Error(), "Invalid key")
}

func (suite *ClientTestSuite) TestNetworkError() {
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

	var transportErr *geosuggest.TransportError

	suite.True(errors.As(err, &transportErr))
	suite.Equal(0, transportErr.StatusCode)
	suite.NotErrorIs(err, geosuggest.ErrCancelled)
}

func (suite *ClientTestSuite) TestBadJSON() {
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{[`))

	_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

	var transportErr *geosuggest.TransportError
	var decodeErr *geosuggest.DecodeError

	suite.True(errors.As(err, &decodeErr))
	suite.False(errors.As(err, &transportErr))
}

func (suite *ClientTestSuite) TestUnexpectedShape() {
	for _, body := range []string{
		`[]`,
		`"results"`,
		`{"results": 1}`,
		`{"results": [{"title": "text"}]}`,
		`{"results": [{"title": {"hl": [{"begin": "0"}]}}]}`,
	} {
		httpmock.RegisterResponder("GET", testEndpoint,
			httpmock.NewStringResponder(http.StatusOK, body))

		_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

		var decodeErr *geosuggest.DecodeError

		suite.True(errors.As(err, &decodeErr), body)
	}
}

func (suite *ClientTestSuite) TestClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())

	cancel()

	_, err := suite.client.Suggest(ctx, geosuggest.NewRequest("red"))

	suite.ErrorIs(err, geosuggest.ErrCancelled)
	suite.ErrorIs(err, context.Canceled)
	suite.Equal(0, httpmock.GetTotalCallCount())
}

func (suite *ClientTestSuite) TestCancelledInFlight() {
	ctx, cancel := context.WithCancel(context.Background())

	defer cancel()

	httpmock.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			cancel()

			return nil, req.Context().Err()
		})

	_, err := suite.client.Suggest(ctx, geosuggest.NewRequest("red"))

	var transportErr *geosuggest.TransportError

	suite.ErrorIs(err, geosuggest.ErrCancelled)
	suite.False(errors.As(err, &transportErr))
}

func (suite *ClientTestSuite) TestTooLargeResponse() {
	body := `{"results": [], "padding": "` + strings.Repeat("x", geosuggest.MaxResponseSize) + `"}`

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(http.StatusOK, body))

	_, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest("red"))

	var transportErr *geosuggest.TransportError

	suite.True(errors.As(err, &transportErr))
	suite.Equal(http.StatusOK, transportErr.StatusCode)
	suite.Contains(err.Error(), "larger than")
}

func (suite *ClientTestSuite) TestConcurrentSuggest() {
	httpmock.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			text := req.URL.Query().Get("text")

			return httpmock.NewStringResponse(http.StatusOK,
				`{"results": [{"title": {"text": "`+text+`"}}]}`), nil
		})

	texts := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	titles := make([]string, len(texts))
	errs := make([]error, len(texts))
	wg := &sync.WaitGroup{}

	wg.Add(len(texts))

	for i, v := range texts {
		go func(i int, text string) {
			defer wg.Done()

			resp, err := suite.client.Suggest(context.Background(), geosuggest.NewRequest(text))
			if err != nil {
				errs[i] = err

				return
			}

			titles[i] = resp.Results[0].Title.Text
		}(i, v)
	}

	wg.Wait()

	for i := range texts {
		suite.NoError(errs[i])
	}

	suite.Equal(texts, titles)
	suite.Equal(len(texts), httpmock.GetTotalCallCount())
}

func TestClient(t *testing.T) {
	suite.Run(t, &ClientTestSuite{})
}
