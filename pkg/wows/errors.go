package wows

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion is returned when a Region outside the supported set is
// used. No request is sent in that case.
var ErrInvalidRegion = errors.New("invalid region")

// TransportError reports that the HTTP exchange could not be completed:
// connection, DNS, TLS and timeout failures, or an unreadable body.
type TransportError struct {
	Op  string // "request" or "read body"
	URL string // request URL with the application key redacted
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("wows: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wows: decoding response (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
