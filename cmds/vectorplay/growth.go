package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/safing/vector/base/vector"
)

var (
	growthAppends int

	growthCmd = &cobra.Command{
		Use:   "growth",
		Short: "Append values and print every capacity change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if growthAppends < 0 {
				return fmt.Errorf("invalid number of appends: %d", growthAppends)
			}
			traceGrowth(cmd.OutOrStdout(), growthAppends)
			return nil
		},
	}
)

func init() {
	growthCmd.Flags().IntVarP(&growthAppends, "n", "n", 20, "how many values to append")
}

// traceGrowth appends n values to an empty vector and writes one line per growth event.
func traceGrowth(w io.Writer, n int) {
	v := vector.New[int]()
	v.SetObserver(vector.ObserverFunc(func(oldCap, newCap int) {
		fmt.Fprintf(w, "len=%d cap %d -> %d\n", v.Len()+1, oldCap, newCap)
	}))

	for i := range n {
		v.PushBack(i)
	}
	fmt.Fprintf(w, "final len=%d cap=%d\n", v.Len(), v.Cap())
}
