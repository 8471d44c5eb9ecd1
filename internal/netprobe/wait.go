package netprobe

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/shahcoding/localstack/internal/portpool"
	"github.com/shahcoding/localstack/internal/sentinel"
)

// Sentinel errors returned by the wait functions for invalid configuration.
// Callers can match these with errors.Is through wrapped error chains.
const (
	// ErrIntervalNotPositive indicates a non-positive poll interval.
	ErrIntervalNotPositive = sentinel.Error("interval must be positive")

	// ErrTimeoutNotPositive indicates a non-positive timeout.
	ErrTimeoutNotPositive = sentinel.Error("timeout must be positive")
)

// WaitConfig configures a polling wait on a single TCP port.
type WaitConfig struct {
	Host     string        // Target host; "localhost" when empty
	Port     int           // Target port
	Interval time.Duration // Poll interval
	Timeout  time.Duration // Overall timeout
}

// validate checks the interval and timeout and fills the host default.
func (c *WaitConfig) validate() error {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Interval <= 0 {
		return fmt.Errorf("wait for port %d: %w", c.Port, ErrIntervalNotPositive)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("wait for port %d: %w", c.Port, ErrTimeoutNotPositive)
	}
	return nil
}

// WaitForPortOpen polls the TCP port until a connection succeeds, the
// timeout elapses, or ctx is canceled.
func WaitForPortOpen(ctx context.Context, cfg WaitConfig) error {
	return waitForPortStatus(ctx, cfg, true)
}

// WaitForPortClosed polls the TCP port until connections stop succeeding,
// the timeout elapses, or ctx is canceled.
func WaitForPortClosed(ctx context.Context, cfg WaitConfig) error {
	return waitForPortStatus(ctx, cfg, false)
}

// waitForPortStatus polls until the port's open state matches wantOpen.
func waitForPortStatus(ctx context.Context, cfg WaitConfig, wantOpen bool) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	// attempt is safe to increment without synchronization:
	// PollUntilContextTimeout invokes the condition sequentially.
	attempt := 0
	err := wait.PollUntilContextTimeout(ctx, cfg.Interval, cfg.Timeout, true,
		func(_ context.Context) (bool, error) {
			attempt++
			open := IsTCPPortOpen(cfg.Host, cfg.Port, cfg.Interval)
			if open == wantOpen {
				portpool.Logger().Debug("port reached desired state",
					"host", cfg.Host, "port", cfg.Port, "open", open, "attempt", attempt)
				return true, nil
			}
			return false, nil
		})
	if err != nil {
		state := "open"
		if !wantOpen {
			state = "closed"
		}
		return fmt.Errorf("wait for port %s:%d to become %s: %w", cfg.Host, cfg.Port, state, err)
	}
	return nil
}

// WaitForPortsOpen waits for all the given TCP ports on one host in
// parallel, sharing the interval and timeout. It returns the first failure
// and cancels the remaining waits.
func WaitForPortsOpen(ctx context.Context, host string, ports []int, interval, timeout time.Duration) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, port := range ports {
		port := port
		g.Go(func() error {
			return WaitForPortOpen(gCtx, WaitConfig{
				Host:     host,
				Port:     port,
				Interval: interval,
				Timeout:  timeout,
			})
		})
	}
	return g.Wait()
}
