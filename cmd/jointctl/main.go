// Command jointctl checks, prints and simulates joint presets.
package main

import (
	"fmt"
	"os"

	"github.com/jakecoffman/joint/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	log *zap.Logger
}

func rootCmd() *cobra.Command {
	var (
		a         = &app{log: zap.NewNop()}
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:           "jointctl",
		Short:         "Work with joint presets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logLevel, logFormat)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatConsole, "Log format (console, json)")

	cmd.AddCommand(
		validateCmd(a),
		showCmd(a),
		simulateCmd(a),
	)
	return cmd
}
