//go:build unix

package term

import (
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// RunForeground drops the terminal to its original mode, starts cmd as a
// new process group, transfers foreground ownership to it via tcsetpgrp so
// its own Ctrl-Z/Ctrl-C reach it instead of us, waits for it to exit, then
// reclaims the foreground and marks our mode Unknown so the next Raw call
// reprograms the terminal rather than trusting stale state. Grounded in the
// same tcsetpgrp-from-parent pattern the original shell and this package's
// teacher both use around child-process spawn.
func (t *Term) RunForeground(cmd *exec.Cmd) error {
	if err := t.Orig(); err != nil {
		return err
	}
	if !t.inIsTerminal {
		err := cmd.Run()
		t.Unknown()
		return err
	}

	fd := int(t.in.Fd())
	parentPgid, pgErr := unix.Tcgetpgrp(fd)

	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
	cmd.SysProcAttr.Pgid = 0

	if pgErr == nil {
		signal.Ignore(syscall.SIGTTOU)
		defer signal.Reset(syscall.SIGTTOU)
	}

	if err := cmd.Start(); err != nil {
		t.Unknown()
		return err
	}

	if pgErr == nil {
		_ = unix.Tcsetpgrp(fd, int32(cmd.Process.Pid))
	}

	waitErr := cmd.Wait()

	if pgErr == nil {
		_ = unix.Tcsetpgrp(fd, parentPgid)
	}

	t.Unknown()
	return waitErr
}
