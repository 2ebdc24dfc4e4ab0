package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// The reporting API exposes exactly three failure kinds to callers:
// bad input (400), not found (404), internal (500). Code carries the
// specific condition, Status carries the kind.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadInput(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

func Internal(code string, err error) *Error {
	return New(http.StatusInternalServerError, code, err)
}

func IsBadInput(err error) bool { return hasStatus(err, http.StatusBadRequest) }
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }
func IsInternal(err error) bool { return hasStatus(err, http.StatusInternalServerError) }

func hasStatus(err error, status int) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == status
}
