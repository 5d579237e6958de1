// Command chanctl is a debug and validation tool for the wire format: it
// can replay a captured packet stream and report header-by-header
// validation results, or frame arbitrary bytes into packets the way a
// Sender would, without requiring a full program written against
// internal/channel.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/chanwire/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "chanctl",
	Short:         "Inspect and exercise the chanwire wire format",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.ConfigureRuntime()
	},
}

func main() {
	rootCmd.AddCommand(validateCmd, dumpCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chanctl: %v\n", err)
		os.Exit(1)
	}
}
