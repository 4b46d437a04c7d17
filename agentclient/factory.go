package agentclient

import (
	"go.uber.org/zap"

	"github.com/datar/agentchat/config"
)

// New creates the transport for the given configuration: the mock simulator
// when UseMock is set, otherwise a real client with a fresh session against
// the endpoint resolved for host.
func New(cfg *config.Config, host string, log *zap.Logger) Transport {
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.UseMock {
		log.Info("mock mode enabled, no backend calls will be made")
		return NewMockClient(log)
	}

	endpoint := cfg.Endpoint(host)
	log.Info("using agent backend", zap.String("endpoint", endpoint))
	return NewClient(endpoint, cfg.AppName, cfg.AuthToken, NewSession(), cfg.HTTPTimeout, log)
}
