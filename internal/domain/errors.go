package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrMissingToken is returned before any request is built when a
	// write is attempted without a bearer token.
	ErrInvalidOrMissingToken = errors.New("invalid or missing token")

	// ErrMalformedResponse is returned when a response body or header does
	// not carry the expected payload.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoPublishingEndpoint is returned when discovery finds neither an
	// RSD document nor a Micropub link.
	ErrNoPublishingEndpoint = errors.New("no publishing endpoint discoverable")

	// ErrUnsupported is returned when the active protocol has no equivalent
	// for the requested operation.
	ErrUnsupported = errors.New("operation not supported by this protocol")

	// ErrUnknownProtocol is returned for an identity kind no adapter handles.
	ErrUnknownProtocol = errors.New("unknown protocol")

	// ErrInvalidURL is returned when a blog address cannot be used.
	ErrInvalidURL = errors.New("invalid blog URL")

	// ErrUnknownState is returned when an authorization callback carries a
	// state that was never issued or already used.
	ErrUnknownState = errors.New("unknown authorization state")

	// ErrInvalidArgument is returned when a call is missing a value it
	// cannot be sent without, such as the id of the post to edit.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TransportError describes a failed exchange with a remote server: either
// the request never completed or the status was not 2xx.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("request to %s returned %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("request to %s returned %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolFault is an XML-RPC fault. Code is kept as text because servers
// send it as either an int or a string.
type ProtocolFault struct {
	Code    string
	Message string
}

func (e *ProtocolFault) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (error: %s)", e.Message, e.Code)
}

// NotFound reports whether the fault means the target does not exist.
func (e *ProtocolFault) NotFound() bool {
	return e.Code == "404"
}
