// Package localstack provides host networking helpers for test
// infrastructure: temporary port reservations, free-port discovery, port
// probing and polling waits, and Docker host address resolution.
//
// # Port Reservations
//
// A PortRange hands out short-lived, in-process claims on ports within a
// numeric range. Reservations let concurrently starting services pick
// distinct ports without racing each other for the same number:
//
//	import "github.com/shahcoding/localstack"
//
//	rng := localstack.NewPortRange(4500, 4600)
//
//	port, err := rng.ReserveAny(0) // 0 = default reservation TTL
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Bind port before the reservation expires (6s by default), or
//	// extend it with rng.SetReservationExpiry.
//
// Reservations expire automatically, so a caller that crashes or forgets
// to release never leaks a port for long. A reservation is an advisory,
// in-process claim backed by a one-shot bind probe; it is not an OS-level
// lock, and processes outside this one are not excluded.
//
// # Probes and Waits
//
// The probe helpers answer "is something listening" questions, and the
// wait helpers poll until a port opens or closes:
//
//	if err := localstack.WaitForPortOpen(ctx, "localhost", 4566,
//	    500*time.Millisecond, 30*time.Second); err != nil {
//	    log.Fatal(err)
//	}
//
// # Marker Reports
//
// The markerreport subpackage aggregates per-test marker annotations into
// a shared JSON report, the counterpart of a test-category report for CI.
package localstack
