package netprobe

import (
	"fmt"
	"net"
	"slices"

	"github.com/shahcoding/localstack/internal/portpool"
)

// maxFreePortRetries is the maximum number of kernel allocations attempted
// before giving up on finding a port outside the blocklist. This guards
// against pathological blocklists.
const maxFreePortRetries = 10

// FreeTCPPort asks the kernel for a free TCP port, skipping any numbers in
// the blocklist. The listener used to obtain the port is closed before
// returning, so the port is only known to have been free a moment ago;
// kernels avoid reusing recently bound ports, which makes collisions rare
// in practice but not impossible.
func FreeTCPPort(blocklist ...int) (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("resolve tcp address: %w", err)
	}

	for i := 0; i < maxFreePortRetries; i++ {
		l, err := net.ListenTCP("tcp", addr)
		if err != nil {
			return 0, fmt.Errorf("listen on tcp address: %w", err)
		}
		port := l.Addr().(*net.TCPAddr).Port
		if closeErr := l.Close(); closeErr != nil {
			portpool.Logger().Warn("close free-port listener", "port", port, "error", closeErr)
		}
		if !slices.Contains(blocklist, port) {
			return port, nil
		}
		portpool.Logger().Debug("kernel-assigned port is blocklisted, retrying", "port", port)
	}
	return 0, fmt.Errorf("determine free tcp port: exhausted %d attempts (blocklist: %v)",
		maxFreePortRetries, blocklist)
}

// FreeUDPPort asks the kernel for a free UDP port, skipping any numbers in
// the blocklist. The same freshness caveat as FreeTCPPort applies.
func FreeUDPPort(blocklist ...int) (int, error) {
	addr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("resolve udp address: %w", err)
	}

	for i := 0; i < maxFreePortRetries; i++ {
		conn, err := net.ListenUDP("udp", addr)
		if err != nil {
			return 0, fmt.Errorf("listen on udp address: %w", err)
		}
		port := conn.LocalAddr().(*net.UDPAddr).Port
		if closeErr := conn.Close(); closeErr != nil {
			portpool.Logger().Warn("close free-port socket", "port", port, "error", closeErr)
		}
		if !slices.Contains(blocklist, port) {
			return port, nil
		}
		portpool.Logger().Debug("kernel-assigned port is blocklisted, retrying", "port", port)
	}
	return 0, fmt.Errorf("determine free udp port: exhausted %d attempts (blocklist: %v)",
		maxFreePortRetries, blocklist)
}
