// Package config provides configuration for the agent chat client.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the client configuration.
type Config struct {
	// Backend endpoints. LocalURL is preferred when the client is served
	// from a loopback host.
	BaseURL  string `env:"AGENTCHAT_BASE_URL" envDefault:"https://datar-integraciones-dd3vrcpotq-rj.a.run.app"`
	LocalURL string `env:"AGENTCHAT_LOCAL_URL" envDefault:"http://localhost:8000"`

	// AppName identifies the agent application on the backend.
	AppName string `env:"AGENTCHAT_APP_NAME" envDefault:"DATAR"`

	// UseMock routes every send to the mock simulator; no network I/O.
	UseMock bool `env:"AGENTCHAT_USE_MOCK"`

	// AuthToken is forwarded opaquely as a bearer token when non-empty.
	AuthToken string `env:"AGENTCHAT_AUTH_TOKEN"`

	// HTTPTimeout bounds a whole request, including a long-lived stream.
	HTTPTimeout time.Duration `env:"AGENTCHAT_HTTP_TIMEOUT" envDefault:"5m"`

	LogLevel string `env:"AGENTCHAT_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, after loading a .env file if
// one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Endpoint resolves the backend base URL for the host the client is served
// from: the local override for loopback hosts, the remote URL otherwise.
func (c *Config) Endpoint(host string) string {
	if isLoopback(host) {
		return c.LocalURL
	}
	return c.BaseURL
}

func isLoopback(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
