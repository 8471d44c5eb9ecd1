package localstack

import (
	"time"

	"github.com/shahcoding/localstack/internal/netprobe"
)

// IsTCPPortOpen reports whether a TCP connection to host:port succeeds
// within timeout (DefaultProbeTimeout when timeout <= 0).
func IsTCPPortOpen(host string, port int, timeout time.Duration) bool {
	return netprobe.IsTCPPortOpen(host, port, timeout)
}

// IsUDPPortOpen reports whether host:port answers an empty UDP datagram
// within timeout (DefaultProbeTimeout when timeout <= 0). UDP gives no
// connection handshake, so a server that listens but never replies is
// indistinguishable from a closed port; treat false as "not proven open".
func IsUDPPortOpen(host string, port int, timeout time.Duration) bool {
	return netprobe.IsUDPPortOpen(host, port, timeout)
}

// IsPortOpen reports whether host:port is open on every one of the given
// protocols, defaulting to TCP only when none are given. Probes use
// DefaultProbeTimeout per attempt.
func IsPortOpen(host string, port int, protocols ...Protocol) bool {
	return netprobe.IsPortOpen(host, port, protocols...)
}
