//go:build !windows

package split

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// terminate asks the encoder to stop so it can finalize its output
func terminate(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return unix.Kill(cmd.Process.Pid, unix.SIGTERM)
}
