// Package cli implements the netcheck subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shahcoding/localstack"
)

// NewFreePortCmd creates the free-port command.
func NewFreePortCmd() *cobra.Command {
	var udp bool

	cmd := &cobra.Command{
		Use:   "free-port",
		Short: "Print a kernel-assigned free port",
		Long: `Asks the kernel for a free port on the loopback interface and prints its
number. The port is released before printing, so it is only probably
free by the time a script binds it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := freePort(udp)
			if err != nil {
				return fmt.Errorf("failed to find a free port: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), port)
			return nil
		},
	}

	cmd.Flags().BoolVar(&udp, "udp", false, "Find a UDP port instead of TCP")

	return cmd
}

func freePort(udp bool) (int, error) {
	if udp {
		return localstack.FreeUDPPort()
	}
	return localstack.FreeTCPPort()
}
