package http

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/go-patentsview/lib/internal"
)

// StatusReasonHeader is the response header in which the API reports
// diagnostic detail for failed requests. It is the only diagnostic the API
// provides; error response bodies are empty.
const StatusReasonHeader = "X-Status-Reason"

var client = resty.New().SetHeader("Accept", "application/json")

// Client returns the underlying resty client, e.g. for transport tweaks or
// test-time mocking.
func Client() *resty.Client {
	return client
}

// SetTimeout bounds the duration of a single request round trip. Zero means
// no bound; requests block for as long as the round trip takes.
func SetTimeout(d time.Duration) {
	client.SetTimeout(d)
}

// HTTPError describes a non-200 API response.
type HTTPError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface
func (e HTTPError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("http status %d", e.StatusCode)
	}
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Reason)
}

// Err returns the HTTPError as an error; a nil *HTTPError yields nil.
func (e *HTTPError) Err() error {
	if e == nil {
		return nil
	}
	return e
}

// Get performs a single GET request with the given query parameters. If
// target is non-nil the response body is unmarshalled into it on success.
// A non-200 status is returned as an *HTTPError carrying the status code
// and the StatusReasonHeader value; the response is still returned so
// callers can inspect the raw body and headers.
func Get(uri string, params url.Values, target any) (*resty.Response, *HTTPError, error) {
	req := client.R()
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}
	if target != nil {
		req.SetResult(target)
	}
	resp, err := req.Get(uri)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error while sending http GET request")
	}
	internal.WithFields(
		internal.Fields{
			"url":    uri,
			"status": resp.StatusCode(),
		},
	).Debug("http GET")
	if resp.StatusCode() != 200 {
		return resp, &HTTPError{
			StatusCode: resp.StatusCode(),
			Reason:     resp.Header().Get(StatusReasonHeader),
		}, nil
	}
	return resp, nil, nil
}
