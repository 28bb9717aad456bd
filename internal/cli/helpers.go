package cli

import (
	"fmt"

	"github.com/tessro/cadence/internal/config"
)

// loadService loads the config and resolves one service definition with
// defaults folded in.
func loadService(name string) (*config.Config, config.ServiceConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.ServiceConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, config.ServiceConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	sc, ok := cfg.Service(name)
	if !ok {
		return nil, config.ServiceConfig{}, fmt.Errorf("unknown service %q (add a [services.%s] section to the config)", name, name)
	}
	return cfg, sc, nil
}
