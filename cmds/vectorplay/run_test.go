package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptsCommand(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	runCmd.SetOut(stdout)
	runCmd.SetErr(stderr)
	t.Cleanup(func() {
		runCmd.SetOut(nil)
		runCmd.SetErr(nil)
		dumpState = false
		printMetrics = false
	})

	dumpState = true
	printMetrics = true
	require.NoError(t, runScripts(runCmd, []string{"testdata/scenario.yaml", "testdata/clear.yaml"}))
	assert.Contains(t, stdout.String(), "ok   scenario (len=4 cap=4)")
	assert.Contains(t, stdout.String(), "ok   clear keeps capacity (len=0 cap=8)")
	assert.Contains(t, stdout.String(), "Capacity: (int) 8")
	assert.Contains(t, stdout.String(), "vectorplay_growths_total 4")

	err := runScripts(runCmd, []string{"testdata/mismatch.yaml", "testdata/invalid.yaml", "testdata/scenario.yaml"})
	assert.EqualError(t, err, "2 of 3 scripts failed")
	assert.Contains(t, stderr.String(), "FAIL mismatch")
	assert.Contains(t, stderr.String(), "size is 2, expected 3")
}
