package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/planets/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// codeStatus maps domain error codes onto response statuses. Client mistakes
// echo the domain message; ephemeris failures do not.
var codeStatus = map[string]int{
	apperrors.CodeUnknownBody:    http.StatusBadRequest,
	apperrors.CodeInvalidDate:    http.StatusBadRequest,
	apperrors.CodeInvalidInput:   http.StatusBadRequest,
	apperrors.CodeEphemerisError: http.StatusInternalServerError,
}

// asHTTPError resolves err into a response: transport errors pass through,
// domain errors map by code, anything else is an opaque 500.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if status, ok := codeStatus[appErr.Code]; ok {
			message := err.Error()
			if status >= http.StatusInternalServerError {
				message = appErr.Message
			}
			return &HTTPError{Status: status, Code: appErr.Code, Message: message, Err: err}
		}
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

// abortWithError records err for errorHandlingMiddleware and stops the chain.
func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
