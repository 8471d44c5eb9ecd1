package localstack

import "github.com/shahcoding/localstack/internal/portpool"

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrPortOutOfRange is returned by Reserve when the requested port
	// number falls outside the range's [start, end) bounds, regardless of
	// whether the port could otherwise be bound.
	ErrPortOutOfRange = portpool.ErrPortOutOfRange

	// ErrPortUnavailable is returned when a port is already reserved, when
	// the operating system refuses the bind probe, or when ReserveAny
	// exhausts the whole range.
	ErrPortUnavailable = portpool.ErrPortUnavailable
)
