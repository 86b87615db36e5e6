// Package response defines consistent HTTP response structures.
// Every API response is an envelope with a "success" or "fail" status.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/src/core/domain"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Success represents a successful response, optionally with data.
type Success struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// Failure represents an error response.
type Failure struct {
	Status string `json:"status"`

	// Error is the HTTP reason phrase, set for authentication failures.
	Error string `json:"error,omitempty"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Code is a machine-readable error code, e.g. "NEW_THREAD.TITLE_LIMIT_CHAR"
	Code string `json:"code,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Status: StatusSuccess, Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Status: StatusSuccess, Data: data})
}

// Done sends a 200 response carrying only the success status.
func Done(c *gin.Context) {
	c.JSON(http.StatusOK, Success{Status: StatusSuccess})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, code, message, requestID string) {
	fail(c, http.StatusBadRequest, code, message, requestID)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	fail(c, http.StatusNotFound, "NOT_FOUND", message, requestID)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message, requestID string) {
	fail(c, http.StatusForbidden, "FORBIDDEN", message, requestID)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusUnauthorized, Failure{
		Status:    StatusFail,
		Error:     http.StatusText(http.StatusUnauthorized),
		Message:   message,
		Code:      "UNAUTHORIZED",
		RequestID: requestID,
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, InternalErrorBody(requestID))
}

// InternalErrorBody is the body of every 500 response.
func InternalErrorBody(requestID string) Failure {
	return Failure{
		Status:    StatusError,
		Message:   "terjadi kegagalan pada server kami",
		Code:      "INTERNAL_ERROR",
		RequestID: requestID,
	}
}

func fail(c *gin.Context, status int, code, message, requestID string) {
	c.JSON(status, Failure{
		Status:    StatusFail,
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// Anything that is not a DomainError is treated as an internal failure.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		InternalError(c, requestID)
		return
	}

	switch {
	case domain.IsValidationError(err):
		BadRequest(c, de.Code, Translate(de), requestID)
	case domain.IsNotFound(err):
		NotFound(c, de.Message, requestID)
	case domain.IsForbidden(err):
		Forbidden(c, de.Message, requestID)
	case domain.IsUnauthorized(err):
		Unauthorized(c, de.Message, requestID)
	default:
		InternalError(c, requestID)
	}
}
