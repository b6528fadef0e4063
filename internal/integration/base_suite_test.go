package integration_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/theater-box-office/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BaseSuite starts a fresh environment per suite. Tests reset the tables they use
// through the testdata fixtures.
type BaseSuite struct {
	suite.Suite
	env *environment
	app *TestApp
}

func (s *BaseSuite) SetupSuite() {
	time.Local = time.UTC

	env, err := startEnvironment(context.Background())
	s.Require().NoError(err, "failed to start test environment")

	s.env = env

	testApp, err := newTestApp(testConfig(env))
	s.Require().NoError(err, "failed to initialize application")

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Close()
	}

	if s.env != nil {
		s.NoError(s.env.terminate())
	}
}

func testConfig(env *environment) app.Config {
	return app.Config{
		Port: 3000,
		Env:  "test",
		DB: app.DBConfig{
			DSN:          env.dsn,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          env.redisAddr,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Booking: app.BookingConfig{
			CommitTimeout:   5 * time.Second,
			AvailabilityTTL: time.Minute,
		},
	}
}

// Scenario is a single request against the full router with its expected outcome.
// ExpectedResponse is compared as JSON, ignoring the keys listed in keysToIgnore.
type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	Cookies          []http.Cookie
	ExpectedStatus   int
	ExpectedHeaders  map[string]string
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers, s.Cookies)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		testApp.Handler.ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		for name, value := range s.ExpectedHeaders {
			assert.Equal(t, value, res.Header.Get(name), "header %s", name)
		}

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
