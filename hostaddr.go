package localstack

import "github.com/shahcoding/localstack/internal/netprobe"

// ResolveHostname resolves hostname to an IP address string, preferring an
// IPv4 address when both families resolve. A hostname that already is an
// IP address is returned unchanged.
func ResolveHostname(hostname string) (string, error) {
	return netprobe.ResolveHostname(hostname)
}

// IsIPAddress reports whether s parses as an IPv4 or IPv6 address.
func IsIPAddress(s string) bool {
	return netprobe.IsIPAddress(s)
}

// IsIPv4Address reports whether s parses as an IPv4 address.
func IsIPv4Address(s string) bool {
	return netprobe.IsIPv4Address(s)
}

// InDockerContainer reports whether the current process appears to run
// inside a Docker container, detected via the /.dockerenv marker file.
func InDockerContainer() bool {
	return netprobe.InDockerContainer()
}

// DockerHostAddress returns an address on which a containerized process
// can reach the Docker host. Inside a container it tries
// host.docker.internal, then host.containers.internal, then falls back to
// bridgeIP (DefaultDockerBridgeIP when empty). Outside a container it
// returns host.docker.internal on non-Linux platforms and bridgeIP on
// Linux.
func DockerHostAddress(bridgeIP string) string {
	return netprobe.DockerHostAddress(bridgeIP)
}
