package agentclient

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/datar/agentchat/domain"
	"github.com/datar/agentchat/ident"
	"github.com/datar/agentchat/payload"
)

// MockAuthor is the persona tag on every simulated event.
const MockAuthor = "DATAR"

// Canned replies, in the product's voice.
var cannedResponses = []string{
	"La Estructura Ecológica Principal conecta los Cerros Orientales con el río Bogotá a través de corredores verdes.",
	"Los humedales de Bogotá son ecosistemas vitales que regulan el ciclo del agua y albergan aves migratorias.",
	"Cada quebrada que baja de los cerros cuenta una historia del territorio. ¿Quieres conocer alguna en particular?",
	"El páramo de Sumapaz, el más grande del mundo, abastece de agua a buena parte de la ciudad.",
	"Puedo contarte sobre los bosques altoandinos, los humedales o los corredores de la ciudad. ¿Por dónde empezamos?",
}

// MockClient simulates the backend without network I/O: single-shot sends
// resolve after a randomized delay with one canned event, streaming sends
// emit the canned reply word by word. The pacing fields have product defaults
// and may be shortened for tests.
type MockClient struct {
	MinDelay       time.Duration
	MaxDelay       time.Duration
	StreamInterval time.Duration

	log *zap.Logger
}

// NewMockClient creates a mock transport with the default pacing.
func NewMockClient(log *zap.Logger) *MockClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &MockClient{
		MinDelay:       800 * time.Millisecond,
		MaxDelay:       2000 * time.Millisecond,
		StreamInterval: 100 * time.Millisecond,
		log:            log,
	}
}

// SendOnce resolves with a single synthetic event after a randomized delay.
func (m *MockClient) SendOnce(ctx context.Context, text string, attachments []domain.Attachment) ([]domain.AgentEvent, error) {
	if err := m.validate(text, attachments); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(m.latency()):
	}

	return []domain.AgentEvent{m.event(m.reply(attachments))}, nil
}

// SendStream emits one event per whitespace-delimited word of a canned reply,
// each carrying the word plus a trailing space, at a fixed interval.
// Cancelling the context stops emission early.
func (m *MockClient) SendStream(ctx context.Context, text string, attachments []domain.Attachment, fn EventHandler) error {
	if err := m.validate(text, attachments); err != nil {
		return err
	}

	ticker := time.NewTicker(m.StreamInterval)
	defer ticker.Stop()

	for _, word := range strings.Fields(m.reply(attachments)) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := fn(m.event(word + " ")); err != nil {
			return err
		}
	}
	return nil
}

// validate mirrors the real client's pre-flight checks so mock mode surfaces
// the same errors.
func (m *MockClient) validate(text string, attachments []domain.Attachment) error {
	parts, err := payload.BuildParts(text, attachments)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return domain.ErrEmptyMessage
	}
	return nil
}

func (m *MockClient) latency() time.Duration {
	if m.MaxDelay <= m.MinDelay {
		return m.MinDelay
	}
	return m.MinDelay + rand.N(m.MaxDelay-m.MinDelay)
}

func (m *MockClient) reply(attachments []domain.Attachment) string {
	text := cannedResponses[rand.IntN(len(cannedResponses))]
	if n := len(attachments); n > 0 {
		text = fmt.Sprintf("He recibido %d archivo(s) adjunto(s). %s", n, text)
	}
	return text
}

func (m *MockClient) event(text string) domain.AgentEvent {
	return domain.AgentEvent{
		ID:        ident.New("event"),
		Timestamp: float64(time.Now().UnixMilli()) / 1000,
		Author:    MockAuthor,
		Content: &domain.Content{
			Role:  "model",
			Parts: []domain.Part{domain.NewTextPart(text)},
		},
	}
}
