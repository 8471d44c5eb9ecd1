package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shahcoding/localstack"
)

// NewWaitCmd creates the wait command.
func NewWaitCmd() *cobra.Command {
	var (
		closed   bool
		interval time.Duration
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait HOST PORT",
		Short: "Wait for a TCP port to open (or close)",
		Long: `Polls HOST:PORT until a TCP connection succeeds, or with --closed until
connections stop succeeding. Exits non-zero when the timeout elapses
first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := args[0]
			port, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", args[1], err)
			}

			ctx := cmd.Context()
			if closed {
				if err := localstack.WaitForPortClosed(ctx, host, port, interval, timeout); err != nil {
					return fmt.Errorf("failed waiting for %s:%d to close: %w", host, port, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d is closed\n", host, port)
				return nil
			}

			if err := localstack.WaitForPortOpen(ctx, host, port, interval, timeout); err != nil {
				return fmt.Errorf("failed waiting for %s:%d to open: %w", host, port, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d is open\n", host, port)
			return nil
		},
	}

	cmd.Flags().BoolVar(&closed, "closed", false, "Wait for the port to close instead of open")
	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "Poll interval")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout")

	return cmd
}
