package localstack

import (
	"context"
	"time"

	"github.com/shahcoding/localstack/internal/netprobe"
)

// WaitForPortOpen polls host:port over TCP at the given interval until a
// connection succeeds, the timeout elapses, or ctx is canceled. An empty
// host means "localhost". Returns ErrIntervalNotPositive or
// ErrTimeoutNotPositive on invalid arguments.
func WaitForPortOpen(ctx context.Context, host string, port int, interval, timeout time.Duration) error {
	return netprobe.WaitForPortOpen(ctx, netprobe.WaitConfig{
		Host:     host,
		Port:     port,
		Interval: interval,
		Timeout:  timeout,
	})
}

// WaitForPortClosed polls host:port over TCP at the given interval until
// connections stop succeeding, the timeout elapses, or ctx is canceled.
func WaitForPortClosed(ctx context.Context, host string, port int, interval, timeout time.Duration) error {
	return netprobe.WaitForPortClosed(ctx, netprobe.WaitConfig{
		Host:     host,
		Port:     port,
		Interval: interval,
		Timeout:  timeout,
	})
}

// WaitForPortsOpen waits for every port in ports to open on host,
// polling concurrently. The first failure cancels the remaining waits.
func WaitForPortsOpen(ctx context.Context, host string, ports []int, interval, timeout time.Duration) error {
	return netprobe.WaitForPortsOpen(ctx, host, ports, interval, timeout)
}

// Sentinel errors returned by the wait functions for invalid arguments.
const (
	// ErrIntervalNotPositive indicates a non-positive poll interval.
	ErrIntervalNotPositive = netprobe.ErrIntervalNotPositive

	// ErrTimeoutNotPositive indicates a non-positive timeout.
	ErrTimeoutNotPositive = netprobe.ErrTimeoutNotPositive
)
