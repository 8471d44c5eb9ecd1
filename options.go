package localstack

import (
	"fmt"
	"time"

	"github.com/juju/clock"
)

// requirePositive panics if v <= 0 with a descriptive message.
func requirePositive[T int | time.Duration](name string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("localstack: %s must be greater than 0, got %v", name, v))
	}
}

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("localstack: %s must not be empty", name))
	}
}

// PortRangeOption configures a PortRange during construction via
// NewPortRange. Each With* function returns a PortRangeOption that sets a
// specific field.
//
// Several With* functions panic on invalid input (empty addresses,
// non-positive durations or capacities). These panics are intentional:
// option values are typically compile-time constants or package-level
// variables, so an invalid value indicates a programmer error rather than
// a runtime condition. The pattern mirrors [regexp.MustCompile] — fail
// fast during initialization instead of returning errors that would be
// universally fatal anyway.
type PortRangeOption func(*portRangeConfig)

// WithBindAddress sets the local address bind probes are attempted on.
// Binding "127.0.0.1" instead of the default wildcard restricts the probe
// to the loopback interface, which avoids firewall prompts on some
// platforms and is usually what tests want.
//
// Default: "0.0.0.0".
//
// Panics if address is empty.
func WithBindAddress(address string) PortRangeOption {
	requireNonEmpty("bind address", address)
	return func(c *portRangeConfig) {
		c.BindAddress = address
	}
}

// WithDefaultTTL sets the reservation lifetime used when a caller does not
// supply an explicit duration. Pick a TTL a little longer than the gap
// between reserving a port and binding it.
//
// Default: 6 seconds.
//
// Panics if d <= 0.
func WithDefaultTTL(d time.Duration) PortRangeOption {
	requirePositive("default TTL", d)
	return func(c *portRangeConfig) {
		c.DefaultTTL = d
	}
}

// WithCacheCapacity sets the maximum number of simultaneous reservations.
// When the limit is reached, the reservation closest to expiry is evicted
// to make room for a new one.
//
// Default: 100.
//
// Panics if capacity <= 0.
func WithCacheCapacity(capacity int) PortRangeOption {
	requirePositive("cache capacity", capacity)
	return func(c *portRangeConfig) {
		c.CacheSize = capacity
	}
}

// WithClock sets the clock driving reservation expiry. Tests inject a
// [github.com/juju/clock/testclock.Clock] to step through TTL expiry
// without sleeping.
//
// Default: the wall clock.
//
// Panics if clk is nil.
func WithClock(clk clock.Clock) PortRangeOption {
	if clk == nil {
		panic("localstack: clock must not be nil")
	}
	return func(c *portRangeConfig) {
		c.Clock = clk
	}
}
