package localstack

import (
	"time"

	"github.com/shahcoding/localstack/internal/netprobe"
)

// Default configuration values for NewPortRange.
// These constants are exported so callers can reference the defaults when
// building custom configurations relative to them (e.g.,
// 2 * DefaultReservationTTL).
const (
	// DefaultReservationTTL is the lifetime of a reservation when the
	// caller does not supply an explicit duration. Six seconds is long
	// enough for a service to bind its reserved port, and short enough
	// that a crashed caller does not hold ports hostage.
	DefaultReservationTTL = 6 * time.Second

	// DefaultCacheCapacity is the maximum number of simultaneous
	// reservations a PortRange tracks. When full, the reservation closest
	// to expiry is evicted to make room.
	DefaultCacheCapacity = 100

	// DefaultBindAddress is the local address bind probes are attempted
	// on. Binding the wildcard address proves the port is free on every
	// interface.
	DefaultBindAddress = "0.0.0.0"

	// DefaultProbeTimeout is the per-attempt timeout used by the port
	// probes when no explicit timeout is given.
	DefaultProbeTimeout = netprobe.DefaultProbeTimeout

	// DefaultDockerBridgeIP is the conventional address of the default
	// Docker bridge gateway, used as the last-resort Docker host address.
	DefaultDockerBridgeIP = netprobe.DefaultDockerBridgeIP
)
