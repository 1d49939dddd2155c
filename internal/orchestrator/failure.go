package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/kurochkinivan/finsight/internal/backend"
	"github.com/kurochkinivan/finsight/internal/domain"
)

type FailureKind string

const (
	KindProbeTimeout     FailureKind = "probe_timeout"
	KindProbeUnreachable FailureKind = "probe_unreachable"
	KindProbeStatus      FailureKind = "probe_status"
	KindRequestTimeout   FailureKind = "request_timeout"
	KindConnectivity     FailureKind = "connectivity"
	KindServerError      FailureKind = "server_error"
	KindCeilingTimeout   FailureKind = "ceiling_timeout"
	KindCanceled         FailureKind = "canceled"
	KindSchema           FailureKind = "schema"
	KindValidation       FailureKind = "validation"
)

// Failure is the single user-facing outcome of a failed attempt.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

const probeChecklist = "Please ensure:\n" +
	"1. The backend server is running\n" +
	"2. The server is accessible at the URL above\n" +
	"3. Check the server logs for any errors"

func probeFailure(url string, err error) *Failure {
	var perr *backend.ProbeError
	if !errors.As(err, &perr) {
		return processFailure(url, err)
	}

	if perr.Kind == backend.ProbeTimeout {
		return &Failure{
			Kind:    KindProbeTimeout,
			Message: fmt.Sprintf("Backend server is not responding at %s.\n\n%s", url, probeChecklist),
			Err:     err,
		}
	}

	kind := KindProbeUnreachable
	detail := err.Error()
	if perr.Kind == backend.ProbeStatus {
		kind = KindProbeStatus
	} else if perr.Err != nil {
		detail = perr.Err.Error()
	}

	return &Failure{
		Kind:    kind,
		Message: fmt.Sprintf("Backend server is not available at %s.\n\nError: %s\n\n%s", url, detail, probeChecklist),
		Err:     err,
	}
}

func processFailure(url string, err error) *Failure {
	var (
		serr   *backend.StatusError
		scerr  *backend.SchemaError
		terr   *backend.TransportError
		verr   *domain.ValidationError
		failed *Failure
	)

	switch {
	case errors.As(err, &failed):
		return failed

	case errors.Is(err, ErrCeilingExceeded):
		return &Failure{
			Kind:    KindCeilingTimeout,
			Message: "Processing timeout: The request took too long. Please check if the backend server is running and try again.",
			Err:     err,
		}

	case errors.Is(err, backend.ErrRequestTimeout):
		return &Failure{
			Kind:    KindRequestTimeout,
			Message: "Request timeout: The server took too long to respond. Please check if the backend is running at " + url,
			Err:     err,
		}

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Failure{Kind: KindCanceled, Message: "Processing canceled", Err: err}

	case errors.As(err, &serr):
		return &Failure{Kind: KindServerError, Message: serr.Message, Err: err}

	case errors.As(err, &scerr):
		return &Failure{
			Kind:    KindSchema,
			Message: "Unexpected response from the backend: " + scerr.Reason,
			Err:     err,
		}

	case errors.As(err, &terr):
		return &Failure{
			Kind: KindConnectivity,
			Message: fmt.Sprintf("Connection failed: Cannot reach the backend server at %s. Please ensure:\n"+
				"1. The backend server is running\n"+
				"2. The server is accessible at %s\n"+
				"3. No proxy or CORS policy blocks the request", url, url),
			Err: err,
		}

	case errors.As(err, &verr):
		return &Failure{Kind: KindValidation, Message: verr.Message, Err: err}

	default:
		return &Failure{Kind: KindServerError, Message: "Failed to process document: " + err.Error(), Err: err}
	}
}
