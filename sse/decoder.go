// Package sse incrementally decodes a server-sent-event byte stream into
// discrete agent event records.
package sse

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/datar/agentchat/domain"
)

const dataPrefix = "data: "

// EmitFunc receives each decoded record in arrival order. A non-nil return
// aborts decoding and is surfaced from Write.
type EmitFunc func(ev domain.AgentEvent) error

// Decoder turns an SSE byte stream into agent events. It is an io.Writer so a
// response body can be piped in with io.Copy; chunk boundaries may fall
// anywhere, including inside a record. Records are newline-delimited lines
// carrying a "data: " prefix; the remainder of each such line is one JSON
// event. A line that fails to parse is logged and skipped, the stream
// continues.
type Decoder struct {
	emit EmitFunc
	log  *zap.Logger
	rest []byte
}

// NewDecoder returns a Decoder delivering records to emit.
func NewDecoder(log *zap.Logger, emit EmitFunc) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{emit: emit, log: log}
}

// Write appends a chunk and emits every record completed by it. The trailing
// segment after the last newline is held back until a later chunk completes
// it.
func (d *Decoder) Write(p []byte) (int, error) {
	d.rest = append(d.rest, p...)
	for {
		i := bytes.IndexByte(d.rest, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := string(d.rest[:i])
		d.rest = d.rest[i+1:]
		if err := d.decodeLine(line); err != nil {
			return len(p), err
		}
	}
}

func (d *Decoder) decodeLine(line string) error {
	line = strings.TrimSuffix(line, "\r")
	if !strings.HasPrefix(line, dataPrefix) {
		return nil
	}
	data := strings.TrimPrefix(line, dataPrefix)

	var ev domain.AgentEvent
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		d.log.Debug("skipping malformed stream record", zap.Error(err))
		return nil
	}
	return d.emit(ev)
}

// Close marks the end of the stream. A trailing segment with no terminating
// newline is discarded, never parsed as a record.
func (d *Decoder) Close() error {
	if len(d.rest) > 0 {
		d.log.Debug("discarding unterminated stream tail", zap.Int("bytes", len(d.rest)))
		d.rest = nil
	}
	return nil
}
