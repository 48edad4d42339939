package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/vector/base/info"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and related metadata.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), info.FullVersion())
		return nil
	},
}
