package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the typed failure returned by use cases and gateways. Respond
// renders it as {"error": Code, "message": Message, ...Extra}.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
	Extra   map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// With attaches an extra top-level key to the response body.
func (e *Error) With(key string, value any) *Error {
	if e.Extra == nil {
		e.Extra = map[string]any{}
	}
	e.Extra[key] = value
	return e
}

// Wrap records the underlying cause without exposing it to the client.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// --------- Taxonomy ---------

func Validation(code, message string, details any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message, Details: details}
}

func Authentication(code, message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: code, Message: message}
}

func NotFoundError(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message}
}

func Unavailable(code, message string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Code: code, Message: message}
}

// Upstream carries a provider failure; status is 400 when the provider
// answered with an error and 500 when it could not be reached at all.
func Upstream(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// --------- Rendering ---------

func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	body := gin.H{"error": appErr.Code}
	if appErr.Message != "" {
		body["message"] = appErr.Message
	}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}
	for k, v := range appErr.Extra {
		body[k] = v
	}

	c.AbortWithStatusJSON(appErr.Status, body)
}

type HTTPError struct {
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
