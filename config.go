package localstack

import "github.com/shahcoding/localstack/internal/portpool"

// portRangeConfig holds configuration for a PortRange. This unexported type
// wraps portpool.Config via embedding, keeping internal/portpool types out
// of the public API signature while avoiding field-by-field duplication.
type portRangeConfig struct {
	portpool.Config
}

// defaultPortRangeConfig returns a config populated with the package
// defaults. The range bounds are filled in by NewPortRange.
func defaultPortRangeConfig() portRangeConfig {
	return portRangeConfig{
		Config: portpool.Config{
			BindAddress: DefaultBindAddress,
			DefaultTTL:  DefaultReservationTTL,
			CacheSize:   DefaultCacheCapacity,
		},
	}
}

// toPoolConfig returns the embedded portpool.Config.
func (c portRangeConfig) toPoolConfig() portpool.Config {
	return c.Config
}
