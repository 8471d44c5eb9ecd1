package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shahcoding/localstack/internal/cli"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "netcheck",
		Short: "Host networking helpers for test and CI scripts",
		Long: `Netcheck answers the networking questions test scripts keep shelling out
for: find a free port, probe whether something is listening, wait for a
service port to open or close, and check that a port range still has
bindable ports in it.`,
		Version: version,
	}

	rootCmd.AddCommand(cli.NewFreePortCmd())
	rootCmd.AddCommand(cli.NewProbeCmd())
	rootCmd.AddCommand(cli.NewWaitCmd())
	rootCmd.AddCommand(cli.NewReserveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
