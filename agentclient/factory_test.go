package agentclient

import (
	"testing"
	"time"

	"github.com/datar/agentchat/config"
)

func TestNewSelectsMock(t *testing.T) {
	cfg := &config.Config{UseMock: true, HTTPTimeout: time.Second}
	if _, ok := New(cfg, "", nil).(*MockClient); !ok {
		t.Fatalf("expected MockClient")
	}
}

func TestNewSelectsRealClient(t *testing.T) {
	cfg := &config.Config{
		BaseURL:     "https://remote.example",
		LocalURL:    "http://localhost:8000",
		AppName:     "DATAR",
		HTTPTimeout: time.Second,
	}

	transport := New(cfg, "example.com", nil)
	client, ok := transport.(*Client)
	if !ok {
		t.Fatalf("expected Client, got %T", transport)
	}
	if client.baseURL != "https://remote.example" {
		t.Fatalf("unexpected endpoint: %s", client.baseURL)
	}

	client = New(cfg, "localhost:3000", nil).(*Client)
	if client.baseURL != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %s", client.baseURL)
	}
}

func TestNewSessionUnique(t *testing.T) {
	a, b := NewSession(), NewSession()
	if a.UserID == b.UserID || a.SessionID == b.SessionID {
		t.Fatalf("sessions not unique: %+v %+v", a, b)
	}
}
