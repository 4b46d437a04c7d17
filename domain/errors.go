package domain

import (
	"errors"
	"fmt"
)

// ErrAttachmentRead reports that an attachment could not be read. The whole
// send fails before any network call; no partial payload is ever sent.
var ErrAttachmentRead = errors.New("attachment read failed")

// ErrEmptyMessage reports a send with neither text nor attachments.
var ErrEmptyMessage = errors.New("message has no content")

// APIError is a failed backend call. StatusCode is 0 when no HTTP response was
// obtained at all (network-level failure). RawBody carries the error body as
// parsed JSON, best effort; it is empty when the body was not valid JSON.
// Failed calls are never retried automatically.
type APIError struct {
	Message    string
	StatusCode int
	RawBody    map[string]any
}

func (e *APIError) Error() string {
	return e.Message
}

// NewHTTPError builds the APIError for a non-2xx response.
func NewHTTPError(statusCode int, rawBody map[string]any) *APIError {
	if rawBody == nil {
		rawBody = map[string]any{}
	}
	return &APIError{
		Message:    fmt.Sprintf("API Error: %d", statusCode),
		StatusCode: statusCode,
		RawBody:    rawBody,
	}
}

// NewNetworkError builds the APIError for a request that got no response.
func NewNetworkError(cause error) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("network error: %v", cause),
		StatusCode: 0,
		RawBody:    map[string]any{},
	}
}
