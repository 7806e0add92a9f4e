package ionomy

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lukehollenback/ionomy/exchange"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// testExchange stands in for the Ionomy API. It records every request it receives and answers
// with a fixed status code and body.
//
type testExchange struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	hits     int32

	status int
	body   string
}

func newTestExchange(t *testing.T, status int, body string) *testExchange {
	o := &testExchange{
		status: status,
		body:   body,
	}

	o.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&o.hits, 1)

		o.mu.Lock()
		o.requests = append(o.requests, r)
		o.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(o.status)
		_, _ = w.Write([]byte(o.body))
	}))

	t.Cleanup(o.server.Close)

	return o
}

func (o *testExchange) api() string {
	return o.server.URL + "/api/v1/"
}

func (o *testExchange) last(t *testing.T) *http.Request {
	o.mu.Lock()
	defer o.mu.Unlock()

	require.NotEmpty(t, o.requests, "the exchange should have received a request")

	return o.requests[len(o.requests)-1]
}

func (o *testExchange) count() int {
	return int(atomic.LoadInt32(&o.hits))
}

func TestRequestReturnsDataOnSuccess(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":{"x":1}}`)
	client := New(Config{API: ex.api()})

	data, err := client.Request(context.Background(), MarketsPath, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"x":1}`, string(data))
	assert.Equal(t, http.MethodGet, ex.last(t).Method)
	assert.Equal(t, "/api/v1/public/markets", ex.last(t).URL.Path)
	assert.Equal(t, "", ex.last(t).URL.RawQuery)
}

func TestRequestReturnsAPIErrorOnFailure(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":false,"message":"bad"}`)
	client := New(Config{API: ex.api()})

	data, err := client.Request(context.Background(), MarketsPath, nil)
	require.Error(t, err)
	assert.Nil(t, data)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "bad", apiErr.Message())
	assert.Equal(t, http.StatusOK, apiErr.Code())
	assert.Contains(t, err.Error(), "bad")

	var generic exchange.APIError
	assert.True(t, errors.As(err, &generic))
}

func TestRequestUsesGenericMessageWhenMissing(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"data":null}`)
	client := New(Config{API: ex.api()})

	_, err := client.Request(context.Background(), MarketsPath, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, GenericErrorMessage, apiErr.Message())
}

func TestRequestReturnsAPIErrorForFailedEnvelopeWithErrorStatus(t *testing.T) {
	ex := newTestExchange(t, http.StatusBadRequest, `{"success":false,"message":"Invalid market"}`)
	client := New(Config{API: ex.api()})

	_, err := client.Request(context.Background(), MarketSummaryPath, Params{{"market", "nope"}})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid market", apiErr.Message())
	assert.Equal(t, http.StatusBadRequest, apiErr.Code())
}

func TestRequestReturnsHTTPErrorForUnparsableErrorResponse(t *testing.T) {
	ex := newTestExchange(t, http.StatusBadGateway, `<html>Bad Gateway</html>`)
	client := New(Config{API: ex.api()})

	_, err := client.Request(context.Background(), MarketsPath, nil)

	var httpErr *exchange.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode())
	assert.Equal(t, "<html>Bad Gateway</html>", string(httpErr.Body()))
}

func TestRequestReturnsDecodeErrorForUnparsableSuccessResponse(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `not json`)
	client := New(Config{API: ex.api()})

	_, err := client.Request(context.Background(), MarketsPath, nil)
	require.Error(t, err)

	var httpErr *exchange.HTTPError
	var apiErr *APIError
	assert.False(t, errors.As(err, &httpErr))
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "failed to decode response envelope")
}

func TestRequestWithoutCredentialsIsUnsigned(t *testing.T) {
	for name, cfg := range map[string]Config{
		"no credentials": {},
		"key only":       {APIKey: "key"},
		"secret only":    {APISecret: "secret"},
	} {
		t.Run(name, func(t *testing.T) {
			ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":[]}`)
			cfg.API = ex.api()

			client := New(cfg)
			assert.False(t, client.Authenticated())

			_, err := client.Request(context.Background(), MarketsPath, nil)
			require.NoError(t, err)

			req := ex.last(t)
			assert.Empty(t, req.Header.Get(AuthTimeHeader))
			assert.Empty(t, req.Header.Get(AuthKeyHeader))
			assert.Empty(t, req.Header.Get(AuthTokenHeader))
		})
	}
}

func TestRequestWithCredentialsIsSigned(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":{"available":"1.00000000"}}`)
	client := New(Config{API: ex.api(), APIKey: "key", APISecret: testSecret})
	require.True(t, client.Authenticated())

	before := time.Now().Unix()

	_, err := client.Request(context.Background(), BalancePath, Params{{"currency", "btc"}, {"unused", nil}})
	require.NoError(t, err)

	after := time.Now().Unix()
	req := ex.last(t)

	//
	// The timestamp must be whole seconds captured during the call.
	//
	authTime, err := strconv.ParseInt(req.Header.Get(AuthTimeHeader), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, authTime, before)
	assert.LessOrEqual(t, authTime, after)

	assert.Equal(t, "key", req.Header.Get(AuthKeyHeader))

	//
	// Recompute the signature the way the exchange does: from the URL it actually received.
	//
	received := ex.server.URL + req.URL.RequestURI()
	assert.Equal(t, ex.api()+"account/balance?currency=btc", received)
	assert.Equal(t, referenceHMAC(received+req.Header.Get(AuthTimeHeader), testSecret), req.Header.Get(AuthTokenHeader))
}

func TestRequestStripsAbsentParams(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":[]}`)
	client := New(Config{API: ex.api()})

	_, err := client.Request(context.Background(), OrderBookPath, Params{
		{"market", "btc-hive"},
		{"depth", nil},
		{"page", 0},
	})
	require.NoError(t, err)

	assert.Equal(t, "market=btc-hive&page=0", ex.last(t).URL.RawQuery)
}

func TestRequestPassesTransportErrorsThrough(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":[]}`)
	client := New(Config{API: ex.api()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Request(ctx, MarketsPath, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, ex.count())
}

func TestRequestIsSafeForConcurrentUse(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":{"x":1}}`)
	client := New(Config{API: ex.api(), APIKey: "key", APISecret: testSecret})

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			data, err := client.Request(context.Background(), BalancePath, Params{{"currency", strconv.Itoa(i)}})
			assert.NoError(t, err)
			assert.JSONEq(t, `{"x":1}`, string(data))
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 16, ex.count())
}

func TestNewAppliesDefaults(t *testing.T) {
	client := New(Config{})

	assert.Equal(t, DefaultAPI, client.API())
	assert.False(t, client.Authenticated())
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	transport, ok := client.httpClient.Transport.(*http.Transport)
	require.True(t, ok)
	assert.False(t, transport.DisableKeepAlives)
}

func TestNewAddsMissingTrailingSlash(t *testing.T) {
	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":[]}`)
	client := New(Config{API: ex.server.URL + "/api/v1"})

	assert.Equal(t, ex.api(), client.API())

	_, err := client.Request(context.Background(), MarketsPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/public/markets", ex.last(t).URL.Path)
}

func TestNewKeepsExistingTrailingSlash(t *testing.T) {
	client := New(Config{API: "https://example.com/api/v1/"})

	assert.Equal(t, "https://example.com/api/v1/", client.API())
}

func TestRequestLogsWithoutCredentials(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	ex := newTestExchange(t, http.StatusOK, `{"success":true,"data":{}}`)
	client := New(Config{API: ex.api(), APIKey: "my-api-key", APISecret: testSecret, Logger: &logger})

	_, err := client.Balance(context.Background(), "hive")
	require.NoError(t, err)

	token := ex.last(t).Header.Get(AuthTokenHeader)
	require.NotEmpty(t, token)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Contains(t, line, `"path":"account/balance"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"signed":true`)
	assert.NotContains(t, line, "my-api-key")
	assert.NotContains(t, line, testSecret)
	assert.NotContains(t, line, token)
	assert.NotContains(t, line, AuthTokenHeader)
	assert.NotContains(t, line, "currency=hive")
}

func TestNewWithKeepAlivesDisabled(t *testing.T) {
	client := New(Config{DisableKeepAlives: true, Timeout: 5 * time.Second})

	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)

	transport, ok := client.httpClient.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, transport.DisableKeepAlives)
}

func TestNewUsesProvidedHTTPClient(t *testing.T) {
	httpClient := &http.Client{}
	client := New(Config{HTTPClient: httpClient})

	assert.Same(t, httpClient, client.httpClient)
}

func TestClientsAreIndependent(t *testing.T) {
	first := New(Config{APIKey: "a", APISecret: "b"})
	second := New(Config{})

	assert.True(t, first.Authenticated())
	assert.False(t, second.Authenticated())
	assert.NotSame(t, first.httpClient, second.httpClient)
}
