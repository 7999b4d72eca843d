package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// ErrTimeout reports that a request exceeded its configured deadline.
// Wrapped into the operation's error chain; test with errors.Is.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx response from the backend. Message carries the
// server's detail when the body had one, otherwise the HTTP status text.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v failed: %v (status %v)", e.Op, e.Message, e.Status)
}

// NetworkError is a transport-level failure: DNS, connection refused, TLS.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%v failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is a 2xx response whose body was not the expected JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v failed: malformed response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// normalizeTransportErr sorts an http.Client failure into the taxonomy.
// Caller-initiated cancellation passes through untouched so callers can
// still match context.Canceled.
func normalizeTransportErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%v -> %w", op, ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%v -> %w", op, context.Canceled)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%v -> %w", op, ErrTimeout)
	}
	return &NetworkError{Op: op, Err: err}
}

// newAPIError builds an APIError from a non-2xx response, pulling the
// message from a {"detail": "..."} body when the server sent one.
func newAPIError(op string, resp *http.Response) *APIError {
	message := http.StatusText(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(body) > 0 {
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
			message = detail.Detail
		}
	}

	return &APIError{Op: op, Status: resp.StatusCode, Message: message}
}
