package localstack

import "github.com/shahcoding/localstack/internal/portpool"

// Protocol identifies the transport protocol of a port. See the individual
// constant documentation for the recognized values.
//
// Protocol is a type alias (not a named type) so that the underlying
// [portpool.Protocol] methods are part of the public API:
//
//   - IsValid reports whether the value is a recognized protocol.
//   - String returns the protocol name (implements [fmt.Stringer]).
//
// This is intentional: callers can validate and print protocol values
// without the public package needing to redeclare these methods.
type Protocol = portpool.Protocol

const (
	// TCP is the Transmission Control Protocol.
	TCP = portpool.TCP

	// UDP is the User Datagram Protocol.
	UDP = portpool.UDP
)

// Port is a (number, protocol) pair. Reservations are keyed by the full
// pair, so 4566/tcp and 4566/udp are independent claims.
//
// Port is a type alias so the underlying [portpool.Port] String method is
// part of the public API.
type Port = portpool.Port

// WrapPort converts a bare port number into a Port, defaulting the
// protocol to TCP. Use a Port literal to reserve a UDP port:
//
//	localstack.Port{Number: 4566, Proto: localstack.UDP}
func WrapPort(number int) Port {
	return portpool.WrapPort(number)
}

// CanBind reports whether port can currently be bound on address. The
// probe binds and immediately releases the port, so the answer is only
// valid at the instant of the check.
func CanBind(port Port, address string) bool {
	return portpool.CanBind(port, address)
}
