//go:build windows

package dispatch

import (
	"os/exec"

	"github.com/drpriver/drsh/internal/term"
)

// reportUsage is a no-op on Windows: ProcessState's rusage there carries
// FILETIME-based kernel/user time rather than the Sec/Usec pair the
// original's wait4-based report prints, and drsh never wired that up for
// the Windows build either.
func reportUsage(t *term.Term, cmd *exec.Cmd) {}
