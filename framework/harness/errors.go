package harness

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

// maxBodyInError is how much of a response body an error message quotes.
const maxBodyInError = 200

// TransportError means that a request got no HTTP response at all: the connection failed,
// was dropped, or the request timed out. A response with an error status is not a
// TransportError.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout returns true if the request failed because its deadline expired.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// DecodeError means that a response body was not the JSON the caller needed.
type DecodeError struct {
	Method string
	URL    string
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode response of %s %s: %s; body was: %s",
		e.Method, e.URL, e.Err, helpers.TruncatedString(string(e.Body), maxBodyInError))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransportError returns true if err is or wraps a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
