package localstack

import (
	"time"

	"github.com/juju/clock"
)

// ConfigSnapshot holds a copy of portRangeConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	Start       int
	End         int
	BindAddress string
	DefaultTTL  time.Duration
	CacheSize   int
	Clock       clock.Clock
}

// ApplyOptionsForTesting creates a default portRangeConfig, applies the
// given options, and returns a ConfigSnapshot of the result. This tests
// the option closures directly without constructing a range.
func ApplyOptionsForTesting(opts ...PortRangeOption) ConfigSnapshot {
	cfg := defaultPortRangeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		Start:       cfg.Start,
		End:         cfg.End,
		BindAddress: cfg.BindAddress,
		DefaultTTL:  cfg.DefaultTTL,
		CacheSize:   cfg.CacheSize,
		Clock:       cfg.Clock,
	}
}
