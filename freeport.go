package localstack

import "github.com/shahcoding/localstack/internal/netprobe"

// FreeTCPPort returns a TCP port number the kernel just handed out on the
// loopback interface. Ports in blocklist are skipped, retrying a bounded
// number of times. The port is released before returning, so it is only
// probably free; reserve it through a PortRange when that matters.
func FreeTCPPort(blocklist ...int) (int, error) {
	return netprobe.FreeTCPPort(blocklist...)
}

// FreeUDPPort is FreeTCPPort for UDP.
func FreeUDPPort(blocklist ...int) (int, error) {
	return netprobe.FreeUDPPort(blocklist...)
}
