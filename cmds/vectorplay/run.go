package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/safing/vector/base/log"
)

var (
	dumpState    bool
	printMetrics bool

	runCmd = &cobra.Command{
		Use:   "run <script.yaml>...",
		Short: "Run operation scripts and check their expectations",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScripts,
	}
)

func init() {
	runCmd.Flags().BoolVar(&dumpState, "dump", false, "dump the vector state after each script")
	runCmd.Flags().BoolVar(&printMetrics, "metrics", false, "print metrics in Prometheus format after each script")
}

type dumpedState struct {
	Script   string
	Size     int
	Capacity int
	Values   []int
}

func runScripts(cmd *cobra.Command, args []string) error {
	var failed int

	for _, path := range args {
		script, err := LoadScript(path)
		if err != nil {
			log.Errorf("vectorplay: %s", err)
			failed++
			continue
		}

		log.Infof("vectorplay: running %s (%d steps)", script.Name, len(script.Steps))
		runner := NewRunner()
		err = runner.Run(script)

		if dumpState {
			spew.Fdump(cmd.OutOrStdout(), dumpedState{
				Script:   script.Name,
				Size:     runner.Vector().Len(),
				Capacity: runner.Vector().Cap(),
				Values:   runner.Vector().Slice(),
			})
		}
		if printMetrics {
			runner.Metrics().WritePrometheus(cmd.OutOrStdout())
		}

		if err != nil {
			log.Errorf("vectorplay: %s failed: %s", script.Name, err)
			fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %s\n", script.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (len=%d cap=%d)\n", script.Name, runner.Vector().Len(), runner.Vector().Cap())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(args))
	}
	return nil
}
