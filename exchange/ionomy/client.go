package ionomy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/lukehollenback/ionomy/exchange"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

//
// Config holds everything needed to construct a Client. The zero value is a valid, unauthenticated
// configuration pointed at the production API.
//
type Config struct {
	//
	// API overrides the base URL every endpoint path is appended to. A trailing "/" is added if it
	// is missing.
	//
	API string

	//
	// APIKey and APISecret enable request signing. If either is empty, requests are sent
	// unauthenticated and only the public endpoints will succeed.
	//
	APIKey    string
	APISecret string

	//
	// DisableKeepAlives turns off persistent connections. Keep-alives are on by default.
	//
	DisableKeepAlives bool

	//
	// Timeout bounds each round trip of the built-in HTTP client. Ignored when HTTPClient is set.
	//
	Timeout time.Duration

	//
	// HTTPClient replaces the built-in HTTP client entirely.
	//
	HTTPClient *http.Client

	//
	// Logger receives one debug event per dispatched request. Defaults to a no-op logger.
	//
	Logger *zerolog.Logger
}

//
// Client implements the exchange.Client interface for the Ionomy API. It holds no mutable state
// once constructed and is safe for concurrent use.
//
type Client struct {
	api        string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ exchange.Client = (*Client)(nil)

//
// New constructs an independent client from the provided configuration.
//
func New(cfg Config) *Client {
	o := &Client{
		api:        cfg.API,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: cfg.HTTPClient,
		logger:     zerolog.Nop(),
	}

	if o.api == "" {
		o.api = DefaultAPI
	}

	if !strings.HasSuffix(o.api, "/") {
		o.api += "/"
	}

	if cfg.Logger != nil {
		o.logger = cfg.Logger.With().Str("component", "ionomy").Logger()
	}

	//
	// Build an HTTP client with its own transport so that connection pooling is never shared with
	// (or mutated by) anything else in the process.
	//
	if o.httpClient == nil {
		if cfg.DisableKeepAlives {
			o.httpClient = cleanhttp.DefaultClient()
		} else {
			o.httpClient = cleanhttp.DefaultPooledClient()
		}

		o.httpClient.Timeout = cfg.Timeout
		if o.httpClient.Timeout == 0 {
			o.httpClient.Timeout = DefaultTimeout
		}
	}

	return o
}

//
// API returns the base URL the client sends requests to.
//
func (o *Client) API() string {
	return o.api
}

//
// Authenticated returns whether or not requests made by the client will be signed.
//
func (o *Client) Authenticated() bool {
	return o.apiKey != "" && o.apiSecret != ""
}

//
// Request sends a GET request for the specified endpoint path with the provided parameters as its
// query string, signing it if the client has credentials. It returns the data payload of a
// successful response envelope untouched.
//
// Transport failures (DNS, TLS, timeouts, cancellation of ctx) are returned exactly as the HTTP
// client produced them.
//
func (o *Client) Request(ctx context.Context, endpointPath string, rawParams Params) (json.RawMessage, error) {
	params := Sanitize(rawParams)
	signed := o.Authenticated()

	//
	// Build the request.
	//
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, CanonicalURL(o.api, endpointPath, params), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")

	if signed {
		o.signedHeaders(endpointPath, params, time.Now().Unix()).Apply(req.Header)
	}

	//
	// Make the request and read the response.
	//
	start := time.Now()

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	o.logger.Debug().
		Str("path", endpointPath).
		Bool("signed", signed).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Dispatched request.")

	return unwrap(resp.StatusCode, body)
}

func (o *Client) signedHeaders(endpointPath string, params Params, timestamp int64) SignedHeaders {
	return SignedHeaders{
		AuthTime:  timestamp,
		AuthKey:   o.apiKey,
		AuthToken: Sign(o.api, endpointPath, params, timestamp, o.apiSecret),
	}
}
