package main

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMainFailedRunExitsNonZero runs main in a child process, since a failed
// simulation ends the process.
func TestMainFailedRunExitsNonZero(t *testing.T) {
	if os.Getenv("LIQUIDATOR_RUN_MAIN") == "1" {
		os.Args = []string{"liquidator", "--start", "2022-01-01", "--end", "2022-01-02", "--step", "0", "--log-level", "error"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMainFailedRunExitsNonZero$")
	cmd.Env = append(os.Environ(), "LIQUIDATOR_RUN_MAIN=1")
	err := cmd.Run()

	var exit *exec.ExitError
	require.True(t, errors.As(err, &exit), "expected a non-zero exit, got %v", err)
	assert.Equal(t, 1, exit.ExitCode())
}
