package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var hostURL string
	rootCmd := &cobra.Command{
		Use:           "cli",
		Short:         "client of the zap node",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&hostURL, "host", "http://localhost:48000", "url of the node to access")
	rootCmd.AddCommand(zapCommands(&hostURL)...)
	rootCmd.AddCommand(chainCommands(&hostURL)...)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "query the transaction history",
	}
	searchCmd.AddCommand(searchCommands(&hostURL)...)
	rootCmd.AddCommand(searchCmd)
	return rootCmd
}

func printResult(cmd *cobra.Command, raw json.RawMessage) error {
	var buffer bytes.Buffer
	if err := json.Indent(&buffer, raw, "", "  "); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), buffer.String())
	return nil
}

// rpcCommand builds a command whose positional args are sent as the params of the method
func rpcCommand(hostURL *string, use string, short string, method string, nargs int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make([]interface{}, 0, len(args))
			for _, a := range args {
				params = append(params, a)
			}
			raw, err := DoRequest(*hostURL, method, params)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}
