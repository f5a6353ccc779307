package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}

// StatusCode returns the HTTP status carried by err, or 500 for plain errors.
func StatusCode(err error) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsStatus(err error, statusCode int) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == statusCode
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return IsStatus(err, http.StatusConflict)
}
