package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shahcoding/localstack"
)

// NewProbeCmd creates the probe command.
func NewProbeCmd() *cobra.Command {
	var (
		udp     bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "probe HOST PORT",
		Short: "Check whether a port is open",
		Long: `Probes HOST:PORT once and exits 0 when the port is open, 1 when it is
not. TCP probes attempt a connection; UDP probes send an empty datagram
and wait for any reply, so a silent UDP service reads as closed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := args[0]
			port, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", args[1], err)
			}

			open := localstack.IsTCPPortOpen(host, port, timeout)
			if udp {
				open = localstack.IsUDPPortOpen(host, port, timeout)
			}
			if !open {
				return fmt.Errorf("%s:%d is not open", host, port)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d is open\n", host, port)
			return nil
		},
	}

	cmd.Flags().BoolVar(&udp, "udp", false, "Probe UDP instead of TCP")
	cmd.Flags().DurationVar(&timeout, "timeout", localstack.DefaultProbeTimeout,
		"Probe timeout")

	return cmd
}
