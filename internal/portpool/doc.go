// Package portpool implements time-limited exclusive port reservation.
// A Pool hands out ports from a configured [start, end) range, recording each
// claim in a bounded TTL cache and verifying OS-level bindability with a
// transient bind probe before granting it. Reservations are in-process
// bookkeeping only: the pool never holds a socket open, so true exclusivity
// against other processes is not guaranteed (callers re-probe if it matters).
package portpool
