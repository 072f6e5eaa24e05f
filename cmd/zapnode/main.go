package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "zapnode",
		Short:         "devnet node serving the ETH to cDAI zap",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (.toml, .yaml)")
	rootCmd.AddCommand(runCommand(&configPath))
	rootCmd.AddCommand(dumpCommand(&configPath))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
