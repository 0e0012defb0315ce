// Package result implements the uniform success/failure envelope every
// operation returns. Failure codes are namespaced "<Operation>.<Kind>" so the
// request boundary can map them without inspecting messages.
package result

import (
	"github.com/collabtrack/project-api/internal/logging"
)

// Failure kinds.
const (
	KindValidation = "Validation"
	KindNoAccess   = "NoAccess"
	KindNotFound   = "NotFound"
	KindException  = "Exception"
)

// Error is the failure payload surfaced to callers.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Kind returns the failure kind suffix of the code, or "" if the code is not
// namespaced.
func (e *Error) Kind() string {
	for i := len(e.Code) - 1; i >= 0; i-- {
		if e.Code[i] == '.' {
			return e.Code[i+1:]
		}
	}
	return ""
}

// Result is the envelope for void operations.
type Result struct {
	Err *Error `json:"error,omitempty"`
}

// Of is the envelope for operations carrying a value.
type Of[T any] struct {
	Value T      `json:"value"`
	Err   *Error `json:"error,omitempty"`
}

func (r Result) IsFailure() bool { return r.Err != nil }

func (r Of[T]) IsFailure() bool { return r.Err != nil }

// Success returns a successful void result.
func Success() Result {
	return Result{}
}

// Ok returns a successful result carrying v.
func Ok[T any](v T) Of[T] {
	return Of[T]{Value: v}
}

// Failure wraps err into a void result.
func Failure(err *Error) Result {
	return Result{Err: err}
}

// FailureOf wraps err into a valued result with the zero value.
func FailureOf[T any](err *Error) Of[T] {
	return Of[T]{Err: err}
}

// Validation builds a structural-validation failure for op.
func Validation(op, message string) *Error {
	return &Error{Code: op + "." + KindValidation, Message: message}
}

// NoAccess builds an access-denied failure for op. The message never reveals
// whether the target exists.
func NoAccess(op string) *Error {
	return &Error{Code: op + "." + KindNoAccess, Message: "Access denied"}
}

// NotFound builds a not-found failure for op. Used only after authorization
// has passed.
func NotFound(op, message string) *Error {
	return &Error{Code: op + "." + KindNotFound, Message: message}
}

// Exception converts an unexpected error into an opaque failure for op. The
// underlying error is logged server-side and never leaves the boundary.
func Exception(op string, err error) *Error {
	logging.Logger.WithField("operation", op).WithError(err).Error("operation failed")
	return &Error{Code: op + "." + KindException, Message: "internal error"}
}
