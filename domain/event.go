package domain

import "io"

// Content is a role-tagged ordered sequence of parts.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// AgentEvent is one event record produced by the backend, either as an element
// of the single-shot JSON array or as one SSE data frame.
type AgentEvent struct {
	ID        string   `json:"id,omitempty"`
	Timestamp float64  `json:"timestamp,omitempty"`
	Author    string   `json:"author,omitempty"`
	Content   *Content `json:"content,omitempty"`
}

// RunRequest is the outbound envelope for both the /run and /run_sse endpoints.
// Constructed fresh per send and never mutated afterwards.
type RunRequest struct {
	AppName    string  `json:"app_name"`
	UserID     string  `json:"user_id"`
	SessionID  string  `json:"session_id"`
	NewMessage Content `json:"new_message"`
	Streaming  bool    `json:"streaming"`
}

// Attachment is a file selected by the caller for one send. The reader is
// consumed once during payload encoding and the attachment is then discarded.
type Attachment struct {
	Name     string
	MimeType string
	Reader   io.Reader
}

// MediaRef is a displayable media resource: either a data URI for inline
// content or the original URI for a file reference.
type MediaRef struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

// NormalizedContent is the uniform shape a frontend renders from one event.
// Derived per event, never persisted.
type NormalizedContent struct {
	Text   string     `json:"text"`
	Images []MediaRef `json:"images"`
	Audio  []MediaRef `json:"audio"`
}
