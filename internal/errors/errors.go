package gerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error is a service error carrying a user facing message and the underlying cause.
type Error struct {
	Code codes.Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GRPCStatus lets status.FromError and status.Code read the kind.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Msg)
}

// Is matches errors of the same kind, so sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrInvalidArgument = &Error{Code: codes.InvalidArgument}
	ErrNotFound        = &Error{Code: codes.NotFound}
	ErrUpstream        = &Error{Code: codes.Unavailable}
	ErrUpstreamTimeout = &Error{Code: codes.DeadlineExceeded}
)

// InvalidArgument reports a missing or malformed caller input.
func InvalidArgument(format string, args ...any) error {
	return &Error{Code: codes.InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// NotFound reports an unknown reference record or a code rejected upstream.
func NotFound(format string, args ...any) error {
	return &Error{Code: codes.NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Upstream wraps a failed rate provider call.
func Upstream(err error, format string, args ...any) error {
	return &Error{Code: codes.Unavailable, Msg: fmt.Sprintf(format, args...), Err: err}
}

// UpstreamTimeout wraps a rate provider call that ran out of time.
func UpstreamTimeout(err error, format string, args ...any) error {
	return &Error{Code: codes.DeadlineExceeded, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Code returns the kind of err, codes.Unknown for foreign errors.
// Context errors map to Canceled and DeadlineExceeded.
func Code(err error) codes.Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Code()
	}
	return status.Code(err)
}

// Message returns the user facing part of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

// HTTPStatus maps err onto the response status code.
func HTTPStatus(err error) int {
	c := Code(err)
	if c == codes.Unknown {
		return http.StatusInternalServerError
	}
	return runtime.HTTPStatusFromCode(c)
}

// IsClientError is true for errors caused by the request itself.
func IsClientError(err error) bool {
	s := HTTPStatus(err)
	return s >= 400 && s < 500
}
