package agentclient

import "github.com/datar/agentchat/ident"

// Session identifies the user/session pair stamped on every request a client
// sends. Immutable once created, so it is safe to read from concurrent
// in-flight sends.
type Session struct {
	UserID    string
	SessionID string
}

// NewSession generates a fresh session identity.
func NewSession() Session {
	return Session{
		UserID:    ident.New("user"),
		SessionID: ident.New("session"),
	}
}
