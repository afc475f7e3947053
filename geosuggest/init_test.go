package geosuggest_test

import (
	"net/http"
	"time"

	"github.com/9seconds/geosuggest/geosuggest"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testEndpoint = "https://suggest.example.com/v1/suggest"

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) RequestSent(url string) {
	m.Called(url)
}

func (m *LoggerMock) RequestFailed(err error) {
	m.Called(err)
}

func (m *LoggerMock) ResponseReceived(statusCode int, results int) {
	m.Called(statusCode, results)
}

type MockedClientTestSuite struct {
	suite.Suite

	http   geosuggest.HTTPClient
	logger *LoggerMock
	client *geosuggest.Client
}

func (suite *MockedClientTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedClientTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedClientTestSuite) SetupTest() {
	suite.http = geosuggest.NewHTTPClient(&http.Client{},
		"test-agent",
		time.Millisecond,
		100)
	suite.logger = &LoggerMock{}
	suite.logger.On("RequestSent", mock.Anything).Maybe()
	suite.logger.On("RequestFailed", mock.Anything).Maybe()
	suite.logger.On("ResponseReceived", mock.Anything, mock.Anything).Maybe()

	suite.client = geosuggest.NewClient(suite.http, "apikey",
		geosuggest.WithEndpoint(testEndpoint),
		geosuggest.WithLogger(suite.logger))
}

func (suite *MockedClientTestSuite) TearDownTest() {
	httpmock.Reset()
}
