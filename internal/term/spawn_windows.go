//go:build windows

package term

import "os/exec"

// RunForeground restores original console mode, runs cmd to completion, and
// marks the terminal's mode Unknown so the next Raw call reprograms it.
// Windows has no process-group foreground-transfer equivalent to tcsetpgrp:
// console ownership follows the attached-process model instead, so simply
// running the child with inherited std handles is sufficient.
func (t *Term) RunForeground(cmd *exec.Cmd) error {
	if err := t.Orig(); err != nil {
		return err
	}
	err := cmd.Run()
	t.Unknown()
	return err
}
