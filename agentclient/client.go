package agentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/datar/agentchat/domain"
	"github.com/datar/agentchat/payload"
	"github.com/datar/agentchat/sse"
)

// Client is the real HTTP transport.
type Client struct {
	baseURL    string
	appName    string
	authToken  string
	session    Session
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client against the given backend base URL. An empty
// authToken disables the Authorization header.
func NewClient(baseURL, appName, authToken string, session Session, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		appName:   appName,
		authToken: authToken,
		session:   session,
		httpClient: &http.Client{
			Timeout: timeout, // long timeout, covers streaming
		},
		log: log,
	}
}

// Session returns the identity stamped on this client's requests.
func (c *Client) Session() Session {
	return c.session
}

// SendOnce posts a message to /run and returns the backend's event array
// verbatim; it may be empty.
func (c *Client) SendOnce(ctx context.Context, text string, attachments []domain.Attachment) ([]domain.AgentEvent, error) {
	resp, err := c.post(ctx, "/run", text, attachments, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httpError(resp.StatusCode, respBody)
	}

	var events []domain.AgentEvent
	if err := json.Unmarshal(respBody, &events); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return events, nil
}

// SendStream posts a message to /run_sse and delivers each decoded event to
// fn as it arrives. It returns nil only after the stream ends cleanly.
func (c *Client) SendStream(ctx context.Context, text string, attachments []domain.Attachment, fn EventHandler) error {
	resp, err := c.post(ctx, "/run_sse", text, attachments, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return httpError(resp.StatusCode, respBody)
	}

	dec := sse.NewDecoder(c.log, sse.EmitFunc(fn))
	if _, err := io.Copy(dec, resp.Body); err != nil {
		return err
	}
	return dec.Close()
}

// post builds the request envelope and executes the POST. Payload encoding
// failures and empty messages are rejected before any network call.
func (c *Client) post(ctx context.Context, path, text string, attachments []domain.Attachment, streaming bool) (*http.Response, error) {
	parts, err := payload.BuildParts(text, attachments)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, domain.ErrEmptyMessage
	}

	req := &domain.RunRequest{
		AppName:    c.appName,
		UserID:     c.session.UserID,
		SessionID:  c.session.SessionID,
		NewMessage: domain.Content{Role: "user", Parts: parts},
		Streaming:  streaming,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if streaming {
		httpReq.Header.Set("Accept", "text/event-stream")
	}
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	c.log.Debug("sending request",
		zap.String("path", path),
		zap.Bool("streaming", streaming),
		zap.Int("parts", len(parts)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewNetworkError(err)
	}
	return resp, nil
}

// httpError parses a non-2xx body as JSON, best effort, and wraps it.
func httpError(statusCode int, body []byte) *domain.APIError {
	raw := map[string]any{}
	if err := json.Unmarshal(body, &raw); err != nil {
		raw = map[string]any{}
	}
	return domain.NewHTTPError(statusCode, raw)
}
