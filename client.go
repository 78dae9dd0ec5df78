// Package patentsview is a client library for the PatentsView legacy REST
// API. It builds parameterized queries from structured filter, field, and
// option values, issues them, validates and parses the responses, and
// flattens nested result collections into tabular rows.
package patentsview

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/go-patentsview/lib/apimodel"
	"github.com/go-patentsview/lib/cache"
	"github.com/go-patentsview/lib/internal"
	httpx "github.com/go-patentsview/lib/internal/http"
)

// DefaultBaseURL is the base URL of the public PatentsView legacy API. The
// API requires no authentication.
const DefaultBaseURL = "https://api.patentsview.org"

// Endpoint identifies a queryable entity endpoint of the API.
type Endpoint string

// The entity endpoints exposed by the API.
const (
	EndpointPatents        Endpoint = "patents"
	EndpointInventors      Endpoint = "inventors"
	EndpointAssignees      Endpoint = "assignees"
	EndpointLocations      Endpoint = "locations"
	EndpointCPCSubsections Endpoint = "cpc_subsections"
)

// URL returns the full query URL for the endpoint under the given base URL.
func (e Endpoint) URL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + string(e) + "/query"
}

// Client issues queries against a single entity endpoint. It holds no
// per-request state; all methods are safe for concurrent use.
type Client struct {
	Endpoint Endpoint
	cfg      Config
}

// NewClient creates a Client for an endpoint with the default configuration.
func NewClient(endpoint Endpoint) *Client {
	c, _ := NewClientWithConfig(endpoint, Config{})
	return c
}

// NewClientWithConfig creates a Client for an endpoint with the given
// configuration.
func NewClientWithConfig(endpoint Endpoint, cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.setupCache(); err != nil {
		return nil, err
	}
	if cfg.Timeout.Duration > 0 {
		httpx.SetTimeout(cfg.Timeout.Duration)
	}
	return &Client{
		Endpoint: endpoint,
		cfg:      cfg,
	}, nil
}

// BuildRequest serializes a query into the request URL and its query
// parameters. It is a pure function of its inputs.
func (c *Client) BuildRequest(q apimodel.Query) (string, url.Values, error) {
	p, err := q.Encode()
	if err != nil {
		return "", nil, err
	}
	vals, err := p.Values()
	if err != nil {
		return "", nil, err
	}
	return c.Endpoint.URL(c.cfg.BaseURL), vals, nil
}

// RawResponse is the undecoded result of a single API round trip.
type RawResponse struct {
	Body        []byte
	StatusCode  int
	ContentType string
	// StatusReason is the X-Status-Reason header value, the API's only
	// diagnostic channel for failed requests.
	StatusReason string
}

// Execute performs a single synchronous GET request. It blocks for the
// duration of the network round trip and never retries; a bound on the
// round trip must be configured explicitly via Config.Timeout. The returned
// error covers transport failures only; status code handling is left to
// ValidateStatus.
func (c *Client) Execute(requestURL string, params url.Values) (*RawResponse, error) {
	resp, errRes, err := httpx.Get(requestURL, params, nil)
	if err != nil {
		return nil, err
	}
	raw := &RawResponse{
		Body:        resp.Body(),
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
	}
	if errRes != nil {
		raw.StatusReason = errRes.Reason
	} else {
		raw.StatusReason = resp.Header().Get(httpx.StatusReasonHeader)
	}
	return raw, nil
}

// ValidateStatus maps a response status code to the error taxonomy: 200 is
// success, 400 means the query was invalid, 500 is an upstream failure, and
// anything else is outside the API's documented contract.
func ValidateStatus(statusCode int, reason string) error {
	switch statusCode {
	case 200:
		return nil
	case 400:
		return &InvalidQueryError{Reason: reason}
	case 500:
		return &ServerError{Reason: reason}
	default:
		return &UnexpectedStatusError{
			StatusCode: statusCode,
			Reason:     reason,
		}
	}
}

// Query runs the full pipeline for a single request: build, execute,
// validate, decode, parse. Responses are cached for Config.CacheTTL when it
// is set; errors are never cached. Either a fully formed QueryResult is
// returned or an error, never both.
func (c *Client) Query(q apimodel.Query) (*QueryResult, error) {
	requestURL, params, err := c.BuildRequest(q)
	if err != nil {
		return nil, err
	}
	key := cache.QueryResponseCacheKey(string(c.Endpoint), params.Encode())
	if c.cacheEnabled() {
		var cached QueryResult
		hit, err := cache.Get(key, &cached)
		if err != nil {
			internal.Log(err)
		} else if hit {
			internal.Log("Obtained query response from cache")
			return &cached, nil
		}
	}
	log := internal.WithFields(
		internal.Fields{
			"request_id": uuid.NewString(),
			"endpoint":   c.Endpoint,
		},
	)
	log.Debug("Executing query")
	raw, err := c.Execute(requestURL, params)
	if err != nil {
		return nil, err
	}
	if err = ValidateStatus(raw.StatusCode, raw.StatusReason); err != nil {
		log.WithError(err).Debug("Query failed")
		return nil, err
	}
	text, err := decodeBody(raw.Body, raw.ContentType)
	if err != nil {
		return nil, err
	}
	res, err := ParseResponse(text)
	if err != nil {
		return nil, err
	}
	log.WithField("count", res.Count).Debug("Query succeeded")
	if c.cacheEnabled() {
		if err = cache.Set(key, res, c.cfg.CacheTTL.Duration); err != nil {
			internal.Log(err)
		}
	}
	return res, nil
}

// FetchAll builds the query with the given page size, executes it once, and
// flattens the result. It never iterates pages: when TotalCount exceeds the
// number of returned records, the caller must raise perPage or issue
// further requests with the page option.
func (c *Client) FetchAll(q apimodel.Query, perPage int) ([]FlatRow, error) {
	if perPage <= 0 {
		perPage = c.cfg.DefaultPerPage
	}
	opts := apimodel.Options{}
	if q.Options != nil {
		opts = *q.Options
	}
	opts.PerPage = perPage
	q.Options = &opts
	res, err := c.Query(q)
	if err != nil {
		return nil, err
	}
	if res.TotalCount > len(res.Records) {
		internal.Warnf(
			"query matched %d records but a single page returned %d; raise the page size or page through",
			res.TotalCount, len(res.Records),
		)
	}
	return Flatten(res), nil
}

func (c *Client) cacheEnabled() bool {
	return c.cfg.CacheTTL.Duration > 0
}
