package apperror

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire shape of every failure body.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HTTPError pairs a status code with the message a client is allowed to see.
// It is the only path by which an internal failure becomes a wire response.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New builds an HTTPError with an explicit status code.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// ServerError returns a 500 Internal Server Error.
func ServerError(message string) *HTTPError {
	return New(http.StatusInternalServerError, message)
}

// BadRequest returns a 400 Bad Request.
func BadRequest(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

// UniqueConstraintViolation returns a 409 Conflict.
func UniqueConstraintViolation(message string) *HTTPError {
	return New(http.StatusConflict, message)
}

// Unauthorized returns a 401 Unauthorized.
func Unauthorized(message string) *HTTPError {
	return New(http.StatusUnauthorized, message)
}

// Forbidden returns a 403 Forbidden. Role-gate violations use this.
func Forbidden(message string) *HTTPError {
	return New(http.StatusForbidden, message)
}

// WriteJSON renders the error envelope to the response writer.
func (e *HTTPError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: e.Message,
	})
}
