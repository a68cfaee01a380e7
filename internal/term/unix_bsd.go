//go:build darwin || freebsd || netbsd || openbsd

package term

import "golang.org/x/sys/unix"

// BSD-family ioctls corresponding to TCGETS/TCSETSF on Linux.
const (
	ioctlGets = unix.TIOCGETA
	ioctlSets = unix.TIOCSETAF
)
