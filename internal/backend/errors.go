package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestTimeout is the cancellation cause of an upload that ran past
	// its request deadline.
	ErrRequestTimeout = errors.New("request timeout")

	errProbeTimeout = errors.New("health probe timeout")
)

type ProbeKind string

const (
	ProbeTimeout     ProbeKind = "timeout"
	ProbeUnreachable ProbeKind = "unreachable"
	ProbeStatus      ProbeKind = "status"
)

// ProbeError is returned by Client.Health when the backend is not live.
type ProbeError struct {
	Kind       ProbeKind
	URL        string
	StatusCode int
	Err        error
}

func (e *ProbeError) Error() string {
	switch e.Kind {
	case ProbeTimeout:
		return fmt.Sprintf("backend at %s did not answer the health probe in time", e.URL)
	case ProbeStatus:
		return fmt.Sprintf("Backend health check failed with status %d", e.StatusCode)
	default:
		return fmt.Sprintf("backend at %s is unreachable: %v", e.URL, e.Err)
	}
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// TransportError means the upload never got an HTTP response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx processing response. Message is the text
// extracted from the response body.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("processing failed: HTTP %d: %s", e.StatusCode, e.Message)
}

// SchemaError is a 2xx response whose body does not match the shape expected
// for the category.
type SchemaError struct {
	Reason string
	Body   string
}

func (e *SchemaError) Error() string {
	return "unexpected response schema: " + e.Reason
}
