//go:build linux

package term

import "golang.org/x/sys/unix"

// TCSAFLUSH-equivalent ioctls on Linux: apply after pending output drains
// and discard unread input, same as the original's tcsetattr(..., TCSAFLUSH, ...).
const (
	ioctlGets = unix.TCGETS
	ioctlSets = unix.TCSETSF
)
