package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_EVENTS dumps every frame crossing the loopback transport
	DebugEvents bool `envconfig:"E2E_DEBUG_EVENTS" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours         bool          `envconfig:"E2E_COLOURS" default:"true"`
	ScenarioTimeout time.Duration `envconfig:"E2E_SCENARIO_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
