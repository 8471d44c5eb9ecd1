package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shahcoding/localstack"
)

// NewReserveCmd creates the reserve command.
func NewReserveCmd() *cobra.Command {
	var (
		port     int
		udp      bool
		duration time.Duration
		bindAddr string
	)

	cmd := &cobra.Command{
		Use:   "reserve START END",
		Short: "Reserve a bindable port from a range",
		Long: `Creates a fresh reservation range over [START, END), reserves a port
from it, and prints the number. With --port the exact port is requested;
otherwise the first bindable port in the range wins.

Reservations live inside a single process, so across invocations this is
a bindability check: the printed port was bindable at the moment of the
probe, nothing more.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid range start %q: %w", args[0], err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid range end %q: %w", args[1], err)
			}
			if start < 0 || start > 65535 || end < 0 || end > 65536 || start > end {
				return fmt.Errorf("invalid range [%d, %d)", start, end)
			}

			opts := []localstack.PortRangeOption{}
			if bindAddr != "" {
				opts = append(opts, localstack.WithBindAddress(bindAddr))
			}
			rng := localstack.NewPortRange(start, end, opts...)

			number, err := reserve(rng, port, udp, duration)
			if err != nil {
				return fmt.Errorf("failed to reserve a port in [%d, %d): %w", start, end, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), number)
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Exact port to reserve (0 = first bindable)")
	cmd.Flags().BoolVar(&udp, "udp", false, "Reserve a UDP port instead of TCP")
	cmd.Flags().DurationVar(&duration, "for", 0, "Reservation duration (0 = range default)")
	cmd.Flags().StringVar(&bindAddr, "bind", "", "Bind probe address (default 0.0.0.0)")

	return cmd
}

func reserve(rng *localstack.PortRange, port int, udp bool, duration time.Duration) (int, error) {
	if port == 0 {
		return rng.ReserveAny(duration)
	}

	p := localstack.WrapPort(port)
	if udp {
		p.Proto = localstack.UDP
	}
	return rng.Reserve(p, duration)
}
