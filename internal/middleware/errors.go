// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
)

// Body decoding errors. Both are delivered to the fault responder.
var (
	ErrMalformedBody = errors.New("malformed request body")
	ErrBodyTooLarge  = errors.New("request body too large")
)

// ErrorHandler answers a request whose processing failed with err.
// Middleware that cannot return an error hands failures to one of these.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// PanicError carries a recovered panic value and the stack at recovery time.
type PanicError struct {
	Value any
	Stack []byte
}

// Error returns the panic value formatted as text.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
