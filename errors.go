package patentsview

import "fmt"

// The API reports failure detail in the X-Status-Reason response header
// rather than the body. The Reason fields below carry that header value
// when the server sent one; it is the only diagnostic available.

// InvalidQueryError signals a status 400 response: the filter was malformed
// JSON or referenced an unknown field or value.
type InvalidQueryError struct {
	Reason string
}

// Error implements the error interface
func (e InvalidQueryError) Error() string {
	if e.Reason == "" {
		return "invalid query"
	}
	return "invalid query: " + e.Reason
}

// ServerError signals a status 500 response, an opaque upstream failure.
type ServerError struct {
	Reason string
}

// Error implements the error interface
func (e ServerError) Error() string {
	if e.Reason == "" {
		return "server error"
	}
	return "server error: " + e.Reason
}

// UnexpectedStatusError signals a response status code outside the
// documented contract of 200, 400, and 500.
type UnexpectedStatusError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface
func (e UnexpectedStatusError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unexpected status code %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Reason)
}

// DecodeError signals that the response body was not valid for the
// character encoding the server declared.
type DecodeError struct {
	Charset string
	Detail  string
}

// Error implements the error interface
func (e DecodeError) Error() string {
	return fmt.Sprintf("cannot decode response body as %s: %s", e.Charset, e.Detail)
}

// MalformedResponseError signals a response body that does not have the
// expected top-level shape, regardless of the status code it arrived with.
type MalformedResponseError struct {
	Detail string
}

// Error implements the error interface
func (e MalformedResponseError) Error() string {
	return "malformed response: " + e.Detail
}
