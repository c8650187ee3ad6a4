package rest

import (
	"fmt"
	"net/http"

	"github.com/rs/query-layer/schema/query"
	"golang.org/x/net/context"
)

var (
	// ErrClientClosedRequest is returned when the client closed the
	// connection before the server was able to finish processing the request.
	ErrClientClosedRequest = &Error{499, "Client Closed Request", nil}
	// ErrGatewayTimeout is returned when the specified timeout for the
	// request has been reached before the server was able to process it.
	ErrGatewayTimeout = &Error{http.StatusGatewayTimeout, "Deadline Exceeded", nil}
	// ErrUnknown is thrown when the origin of the error can't be identified.
	ErrUnknown = &Error{520, "Unknown Error", nil}
)

// Error defines a REST error with optional per parameter error details.
type Error struct {
	// Code defines the error code to be used for the error and for the HTTP
	// status.
	Code int
	// Message is the error message.
	Message string
	// Issues holds per parameter errors if any.
	Issues map[string][]interface{}
}

// NewError returns a rest.Error from a standard error.
//
// If the inputted error is recognized, the appropriate rest.Error is mapped.
func NewError(err error) *Error {
	if Err, ok := err.(*Error); ok {
		return Err
	}
	if e, ok := err.(*query.InvalidQueryError); ok {
		return &Error{
			http.StatusUnprocessableEntity,
			fmt.Sprintf("Invalid `%s` parameter: `%s' is not valid for resource `%s'", e.ParamType, e.Param, e.Resource),
			map[string][]interface{}{string(e.ParamType): {e.Param}},
		}
	}
	switch err {
	case context.Canceled:
		return ErrClientClosedRequest
	case context.DeadlineExceeded:
		return ErrGatewayTimeout
	case nil:
		return nil
	default:
		return &Error{520, err.Error(), nil}
	}
}

// Error returns the error as string.
func (e *Error) Error() string {
	return e.Message
}
