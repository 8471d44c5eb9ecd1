package localstack

import "github.com/shahcoding/localstack/internal/portpool"

// PortRange hands out exclusive, temporary claims on ports within the
// half-open range [start, end). Reservations expire automatically after
// their TTL, claims are keyed by (number, protocol), and every reservation
// is preceded by an OS bind probe so already-bound ports are never handed
// out.
//
// A PortRange is an ordinary value owned by its creator: construct one per
// test binary, per suite, or per subsystem as needed. There is no
// process-wide shared instance, so independent ranges never contend on a
// global lock and tests can use disjoint numeric ranges to stay out of
// each other's way.
//
// PortRange is a type alias (not a named type) so that the underlying
// [portpool.Pool] methods are part of the public API: Reserve, ReserveAny,
// IsReserved, Release, SetReservationExpiry, Reserved, Start, and End.
type PortRange = portpool.Pool

// NewPortRange creates a PortRange for the half-open range [start, end).
// end itself is never handed out.
//
// Panics if the bounds are not valid port numbers, if start exceeds end,
// or if an option value is invalid; see [PortRangeOption].
func NewPortRange(start, end int, opts ...PortRangeOption) *PortRange {
	cfg := defaultPortRangeConfig()
	cfg.Start = start
	cfg.End = end
	for _, opt := range opts {
		opt(&cfg)
	}
	return portpool.New(cfg.toPoolConfig())
}
