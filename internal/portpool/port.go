package portpool

import "fmt"

// Protocol identifies the transport protocol of a port.
type Protocol string

// Supported protocols. TCP and UDP reservations on the same port number are
// independent: reserving 4566/tcp says nothing about 4566/udp.
const (
	TCP Protocol = "tcp"
	UDP Protocol = "udp"
)

// IsValid reports whether the value is a recognized protocol.
func (p Protocol) IsValid() bool {
	return p == TCP || p == UDP
}

// String returns the protocol name (implements fmt.Stringer).
func (p Protocol) String() string {
	return string(p)
}

// Port is a (number, protocol) pair identifying a network endpoint family.
// It is a comparable value type: equality covers both fields, and Port is
// usable directly as a map key. Immutable once constructed.
type Port struct {
	// Number is the port number, in [0, 65535].
	Number int
	// Proto is the transport protocol, TCP or UDP.
	Proto Protocol
}

// WrapPort returns the given number as a TCP Port. It mirrors the common
// calling convention where a bare integer means a TCP port.
func WrapPort(number int) Port {
	return Port{Number: number, Proto: TCP}
}

// String renders the port as "number/protocol", e.g. "4566/tcp".
func (p Port) String() string {
	return fmt.Sprintf("%d/%s", p.Number, p.Proto)
}
