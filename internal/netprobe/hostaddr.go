package netprobe

import (
	"fmt"
	"net"
	"os"
	"runtime"
)

// DefaultDockerBridgeIP is the address of the default Docker bridge
// interface on the host, used as the last-resort Docker host address.
const DefaultDockerBridgeIP = "172.17.0.1"

// dockerEnvPath marks a Docker container filesystem.
const dockerEnvPath = "/.dockerenv"

// ResolveHostname resolves hostname and returns one of its addresses,
// preferring IPv4 when available.
func ResolveHostname(hostname string) (string, error) {
	addrs, err := net.LookupHost(hostname)
	if err != nil {
		return "", fmt.Errorf("resolve hostname %q: %w", hostname, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("resolve hostname %q: no addresses", hostname)
	}
	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr, nil
		}
	}
	return addrs[0], nil
}

// IsIPAddress reports whether s parses as an IPv4 or IPv6 address.
func IsIPAddress(s string) bool {
	return net.ParseIP(s) != nil
}

// IsIPv4Address reports whether s parses as an IPv4 address.
func IsIPv4Address(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// InDockerContainer reports whether the current process runs inside a
// Docker container, detected via the /.dockerenv marker file.
func InDockerContainer() bool {
	_, err := os.Stat(dockerEnvPath)
	return err == nil
}

// DockerHostAddress returns the address a containerized process should use
// to reach services on the Docker host. Inside a container it resolves
// host.docker.internal, then host.containers.internal, and falls back to
// the bridge IP (DefaultDockerBridgeIP when bridgeIP is empty). Outside a
// container, non-Linux Docker installations expose host.docker.internal;
// on Linux the bridge IP is the host-reachable address.
func DockerHostAddress(bridgeIP string) string {
	if bridgeIP == "" {
		bridgeIP = DefaultDockerBridgeIP
	}

	if InDockerContainer() {
		for _, hostname := range []string{"host.docker.internal", "host.containers.internal"} {
			if addr, err := ResolveHostname(hostname); err == nil {
				return addr
			}
		}
		return bridgeIP
	}

	if runtime.GOOS != "linux" {
		return "host.docker.internal"
	}
	return bridgeIP
}
