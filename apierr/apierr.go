package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeIngest = "INGEST_ERROR"
	CodeStore  = "STORE_ERROR"
)

// Error carries the HTTP status a failure should surface as.
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
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Ingest marks malformed or missing upload input. The message is safe to show the client.
func Ingest(err error) *Error {
	return New(http.StatusBadRequest, CodeIngest, err)
}

// Store marks a record store failure. Its detail stays server-side.
func Store(err error) *Error {
	return New(http.StatusInternalServerError, CodeStore, err)
}

// StatusOf reports the HTTP status and code for err, defaulting to 500.
func StatusOf(err error) (int, string) {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status, e.Code
	}
	return http.StatusInternalServerError, ""
}

func IsIngest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeIngest
}
