package portpool

import (
	"net"
	"strconv"
)

// CanBind reports whether a local port can currently be bound on the given
// address. This is a stricter check than a connect-style probe: a port that
// does not respond to connections may still be bound by another process.
//
// The probe opens a socket of the matching protocol, binds it, and closes it
// immediately. Bindability is only proven for the instant of the check; the
// kernel may hand the port to someone else the moment the probe socket
// closes.
func CanBind(port Port, address string) bool {
	addr := net.JoinHostPort(address, strconv.Itoa(port.Number))

	switch port.Proto {
	case TCP:
		l, err := net.Listen("tcp", addr)
		if err != nil {
			// Either the port is in use or we lack permission to bind it.
			return false
		}
		if closeErr := l.Close(); closeErr != nil {
			Logger().Warn("close bind probe listener", "port", port.String(), "error", closeErr)
		}
		return true
	case UDP:
		pc, err := net.ListenPacket("udp", addr)
		if err != nil {
			return false
		}
		if closeErr := pc.Close(); closeErr != nil {
			Logger().Warn("close bind probe socket", "port", port.String(), "error", closeErr)
		}
		return true
	default:
		Logger().Debug("unsupported protocol for bind probe", "protocol", string(port.Proto))
		return false
	}
}
