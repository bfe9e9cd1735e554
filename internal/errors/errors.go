package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

// Authentication is produced for missing or invalid credentials.
func Authentication(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusUnauthorized}
}

// Authorization is produced when an authenticated user does not own the resource.
func Authorization(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusForbidden}
}

func NotFound(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotFound}
}

// StatusCode returns the status carried by err, or 500 for plain errors.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == code
}

func IsValidation(err error) bool     { return hasStatus(err, http.StatusBadRequest) }
func IsAuthentication(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
func IsAuthorization(err error) bool  { return hasStatus(err, http.StatusForbidden) }
func IsNotFound(err error) bool       { return hasStatus(err, http.StatusNotFound) }
