// Package agentclient provides clients for an ADK-style agent backend: a real
// HTTP transport against the /run and /run_sse endpoints, and a mock transport
// for running without a backend. Both sit behind the Transport interface,
// selected once at construction.
package agentclient

import (
	"context"

	"github.com/datar/agentchat/domain"
)

// EventHandler is called once per agent event, in arrival order. Handlers are
// invoked one at a time, never concurrently. A non-nil return stops the
// stream and is surfaced from SendStream.
type EventHandler func(ev domain.AgentEvent) error

// Transport defines the two send operations a chat frontend needs. A nil
// error from SendStream means the stream ended cleanly after the last
// delivered event; cancellation goes through the context.
type Transport interface {
	// SendOnce posts a message and returns the complete event list.
	SendOnce(ctx context.Context, text string, attachments []domain.Attachment) ([]domain.AgentEvent, error)

	// SendStream posts a message and delivers events incrementally.
	SendStream(ctx context.Context, text string, attachments []domain.Attachment, fn EventHandler) error
}

var _ Transport = (*Client)(nil)
var _ Transport = (*MockClient)(nil)
