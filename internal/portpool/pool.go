package portpool

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/juju/clock"

	"github.com/shahcoding/localstack/internal/sentinel"
	"github.com/shahcoding/localstack/internal/ttlcache"
)

// Sentinel errors for error inspection with errors.Is. The pool never
// retries internally; both conditions are reported synchronously to the
// caller, who decides whether to retry with backoff.
const (
	// ErrPortOutOfRange is returned by Reserve when the requested port
	// number falls outside the pool's [start, end) range.
	ErrPortOutOfRange = sentinel.Error("port is outside the configured range")

	// ErrPortUnavailable is returned when a port is already reserved, when
	// the OS refuses the bind probe, or when ReserveAny exhausts the range.
	ErrPortUnavailable = sentinel.Error("port is unavailable")
)

// Config holds construction parameters for a Pool.
type Config struct {
	// Start and End define the half-open range [Start, End) of port numbers
	// eligible for reservation.
	Start int
	End   int

	// BindAddress is the local address bind probes are attempted on.
	BindAddress string

	// DefaultTTL is the reservation lifetime used when a caller does not
	// supply an explicit duration.
	DefaultTTL time.Duration

	// CacheSize bounds the number of simultaneous reservations.
	CacheSize int

	// Clock drives reservation expiry. Nil means the wall clock.
	Clock clock.Clock
}

// validate panics on invalid configuration. Construction inputs are
// programmer-supplied constants, so failing fast beats returning an error
// that would be universally fatal anyway.
func (c Config) validate() {
	if c.Start < 0 || c.Start > 65535 {
		panic(fmt.Sprintf("portpool: range start must be in [0, 65535], got %d", c.Start))
	}
	if c.End < 0 || c.End > 65536 {
		panic(fmt.Sprintf("portpool: range end must be in [0, 65536], got %d", c.End))
	}
	if c.Start > c.End {
		panic(fmt.Sprintf("portpool: range start %d must not exceed end %d", c.Start, c.End))
	}
	if c.BindAddress == "" {
		panic("portpool: bind address must not be empty")
	}
	if c.DefaultTTL <= 0 {
		panic(fmt.Sprintf("portpool: default TTL must be greater than 0, got %v", c.DefaultTTL))
	}
	if c.CacheSize <= 0 {
		panic(fmt.Sprintf("portpool: cache size must be greater than 0, got %d", c.CacheSize))
	}
}

// Pool hands out exclusive, temporary claims on ports within a numeric
// range. A reservation is a cache entry with a TTL, not an OS-level lock:
// the bind probe proves bindability only at the instant of the check, and a
// third party may bind the port in the gap between the probe and actual use.
// Callers that need airtight exclusivity must re-probe before use.
//
// It is safe for concurrent use by multiple goroutines.
type Pool struct {
	// mu serializes every full reservation attempt: cache check, bind
	// probe, and cache insert. Holding the lock across the probe closes the
	// check-then-act race where two callers both find a port free, both
	// probe it, and both reserve it. The probe's transient bind/release is
	// externally observable, so it must be atomic with respect to other
	// pool callers.
	mu sync.Mutex

	// reservations maps a Port to a placeholder entry whose presence marks
	// the port as claimed. The cache knows nothing about sockets.
	reservations *ttlcache.Cache[Port, struct{}]

	cfg Config
}

// New creates a Pool for the range [cfg.Start, cfg.End).
// Panics if the configuration is invalid; see Config.validate.
func New(cfg Config) *Pool {
	cfg.validate()
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	return &Pool{
		reservations: ttlcache.New[Port, struct{}](cfg.CacheSize, cfg.DefaultTTL, cfg.Clock),
		cfg:          cfg,
	}
}

// Start returns the inclusive lower bound of the pool's range.
func (p *Pool) Start() int { return p.cfg.Start }

// End returns the exclusive upper bound of the pool's range.
func (p *Pool) End() int { return p.cfg.End }

// Reserve claims the exact given port for ttl (the pool default when
// ttl <= 0) and returns its number.
//
// Returns ErrPortOutOfRange if the number is outside [start, end),
// regardless of OS port state. Returns ErrPortUnavailable if the port is
// already reserved or the OS bind probe fails. A failed attempt leaves no
// state behind.
func (p *Pool) Reserve(port Port, ttl time.Duration) (int, error) {
	if !p.inRange(port.Number) {
		return 0, fmt.Errorf("requested port %s is not in the range [%d, %d): %w",
			port, p.cfg.Start, p.cfg.End, ErrPortOutOfRange)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tryReserveLocked(port, ttl)
}

// ReserveAny scans [start, end) in ascending order and claims the first
// port that is neither reserved nor refused by the OS, for ttl (the pool
// default when ttl <= 0). The scan uses TCP ports, matching the convention
// that a bare port number means TCP.
//
// Returns ErrPortUnavailable when the whole range is exhausted; the error
// message carries the currently reserved set for diagnostics.
func (p *Pool) ReserveAny(ttl time.Duration) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for number := p.cfg.Start; number < p.cfg.End; number++ {
		num, err := p.tryReserveLocked(WrapPort(number), ttl)
		if err == nil {
			return num, nil
		}
		// This single port being taken is no reason to give up; try the next.
	}

	return 0, fmt.Errorf("no free port in the range [%d, %d) (currently reserved: %v): %w",
		p.cfg.Start, p.cfg.End, p.reservedLocked(), ErrPortUnavailable)
}

// IsReserved reports whether the pool currently holds a live reservation
// for exactly this (number, protocol) pair.
func (p *Pool) IsReserved(port Port) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.reservations.Get(port)
	return ok
}

// Release drops the reservation for port before its TTL elapses. Releasing
// an unreserved port is a no-op.
func (p *Pool) Release(port Port) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reservations.Remove(port)
}

// SetReservationExpiry re-times a live reservation to expire at now + ttl;
// a zero or negative ttl expires it immediately. Returns false if the port
// has no live reservation.
func (p *Pool) SetReservationExpiry(port Port, ttl time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reservations.SetExpiry(port, ttl)
}

// Reserved returns the currently live reservations, sorted by number then
// protocol for stable diagnostics.
func (p *Pool) Reserved() []Port {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reservedLocked()
}

// tryReserveLocked performs a single reservation attempt at port: fail if a
// live cache entry exists, fail if the OS refuses the bind probe, otherwise
// insert a cache entry and return the number. Callers must hold mu.
func (p *Pool) tryReserveLocked(port Port, ttl time.Duration) (int, error) {
	if _, ok := p.reservations.Get(port); ok {
		return 0, fmt.Errorf("port %s is already reserved: %w", port, ErrPortUnavailable)
	}
	if !CanBind(port, p.cfg.BindAddress) {
		return 0, fmt.Errorf("port %s cannot be bound on %s: %w",
			port, p.cfg.BindAddress, ErrPortUnavailable)
	}

	if ttl <= 0 {
		ttl = p.cfg.DefaultTTL
	}
	p.reservations.SetTTL(port, struct{}{}, ttl)
	Logger().Debug("reserved port", "port", port.String(), "ttl", ttl)
	return port.Number, nil
}

// reservedLocked returns the live reservations in sorted order.
// Callers must hold mu.
func (p *Pool) reservedLocked() []Port {
	ports := p.reservations.Keys()
	sort.Slice(ports, func(i, j int) bool {
		if ports[i].Number != ports[j].Number {
			return ports[i].Number < ports[j].Number
		}
		return ports[i].Proto < ports[j].Proto
	})
	return ports
}

// inRange reports whether number falls in [start, end).
func (p *Pool) inRange(number int) bool {
	return number >= p.cfg.Start && number < p.cfg.End
}
