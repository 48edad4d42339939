package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/safing/vector/base/info"
	"github.com/safing/vector/base/log"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "vectorplay",
		Short: "Replay operation scripts against a vector and check the outcome",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Start(logLevel, false)
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warning", "set log level to [trace|debug|info|warning|error|critical]")
	rootCmd.AddCommand(runCmd, growthCmd, versionCmd)
}

func main() {
	info.Set("Vectorplay", "", "GPLv3")

	err := rootCmd.Execute()
	log.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
