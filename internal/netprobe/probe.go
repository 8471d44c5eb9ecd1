package netprobe

import (
	"net"
	"strconv"
	"time"

	"github.com/shahcoding/localstack/internal/portpool"
)

// DefaultProbeTimeout bounds a single connect-style probe attempt.
const DefaultProbeTimeout = time.Second

// IsTCPPortOpen reports whether a TCP connection to host:port succeeds
// within timeout (DefaultProbeTimeout when timeout <= 0). Note this is a
// reachability check, not a bindability check: a port that does not accept
// connections may still be bound by another process (see portpool.CanBind).
func IsTCPPortOpen(host string, port int, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	if closeErr := conn.Close(); closeErr != nil {
		portpool.Logger().Debug("close probe connection", "host", host, "port", port, "error", closeErr)
	}
	return true
}

// IsUDPPortOpen sends an empty datagram to host:port and waits up to
// timeout (DefaultProbeTimeout when timeout <= 0) for any reply.
//
// UDP is connectionless, so a silent-but-listening service reads as closed
// (false negative). On loopback, a datagram to an unbound port usually
// produces an ICMP port-unreachable that surfaces as a read error, making
// the check reliable locally; across real networks treat a false result as
// "no response", not proof the port is closed.
func IsUDPPortOpen(host string, port int, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	conn, err := net.DialTimeout("udp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			portpool.Logger().Debug("close probe connection", "host", host, "port", port, "error", closeErr)
		}
	}()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return false
	}
	if _, err := conn.Write(nil); err != nil {
		return false
	}

	buf := make([]byte, 1024)
	_, err = conn.Read(buf)
	return err == nil
}

// IsPortOpen probes host:port over the given protocols (TCP only when none
// are given) and reports whether every probed protocol is open.
func IsPortOpen(host string, port int, protocols ...portpool.Protocol) bool {
	if len(protocols) == 0 {
		protocols = []portpool.Protocol{portpool.TCP}
	}
	for _, proto := range protocols {
		switch proto {
		case portpool.TCP:
			if !IsTCPPortOpen(host, port, 0) {
				return false
			}
		case portpool.UDP:
			if !IsUDPPortOpen(host, port, 0) {
				return false
			}
		default:
			portpool.Logger().Debug("unsupported protocol for port check", "protocol", string(proto))
			return false
		}
	}
	return true
}
