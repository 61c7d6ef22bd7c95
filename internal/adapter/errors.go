package adapter

import "errors"

// Errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrEmptyShareID is returned when the shortener answers 2xx without a
	// share id.
	ErrEmptyShareID = errors.New("shortener returned an empty share id")

	// ErrActionFailed is returned when the daemon reports a failed action.
	ErrActionFailed = errors.New("daemon action failed")
)
