//go:build unix

package dispatch

import (
	"os/exec"
	"syscall"

	"github.com/drpriver/drsh/internal/term"
)

// reportUsage prints the child's user/system CPU time from its rusage,
// matching the "time" builtin's wait4-derived output.
func reportUsage(t *term.Term, cmd *exec.Cmd) {
	if cmd.ProcessState == nil {
		return
	}
	rusage, ok := cmd.ProcessState.SysUsage().(*syscall.Rusage)
	if !ok || rusage == nil {
		return
	}
	t.Printf("user   time: %ds%dus\r\n", rusage.Utime.Sec, rusage.Utime.Usec)
	t.Printf("system time: %ds%dus\r\n", rusage.Stime.Sec, rusage.Stime.Usec)
}
