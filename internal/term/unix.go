//go:build unix

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type platformState struct {
	orig unix.Termios
	raw  unix.Termios
}

func (t *Term) platformOpen() error {
	if !t.inIsTerminal {
		return nil
	}
	orig, err := unix.IoctlGetTermios(int(t.in.Fd()), ioctlGets)
	if err != nil {
		return fmt.Errorf("term: tcgetattr: %w", err)
	}
	t.plat.orig = *orig
	return nil
}

func (t *Term) platformRaw() error {
	if !t.inIsTerminal {
		return nil
	}
	raw := t.plat.orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	// ISIG is deliberately left set (not cleared) so Ctrl-Z still raises
	// SIGTSTP; only echo, canonical mode, and extended processing go.
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	t.plat.raw = raw
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlSets, &raw); err != nil {
		return fmt.Errorf("term: tcsetattr: %w", err)
	}
	return nil
}

func (t *Term) platformOrig() error {
	if !t.inIsTerminal {
		return nil
	}
	orig := t.plat.orig
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlSets, &orig); err != nil {
		return fmt.Errorf("term: tcsetattr: %w", err)
	}
	return nil
}
