// Package term manages the terminal's raw/cooked mode lifecycle and output
// buffering for the line editor, mirroring the original shell's DrshTermState
// state machine: INIT -> RAW <-> ORIG -> UNKNOWN.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/drpriver/drsh/internal/buffer"
)

// State names the terminal's current mode.
type State int

const (
	// StateInit is the state immediately after Open: the original mode has
	// been captured but neither RAW nor ORIG has been entered yet.
	StateInit State = iota
	// StateRaw: input available byte-by-byte, unechoed, unprocessed.
	StateRaw
	// StateOrig: the terminal's original mode has been restored.
	StateOrig
	// StateUnknown: a child process may have repointed the terminal's mode;
	// the next transition to Raw or Orig must not skip reprogramming it.
	StateUnknown
)

// Term owns the input/output file descriptors, tracks raw/cooked mode, and
// buffers writes the way the original shell's output buffer did.
type Term struct {
	in  *os.File
	out *os.File

	inIsTerminal  bool
	outIsTerminal bool

	state State

	writer *bufio.Writer
	scratch buffer.Grow

	plat platformState
}

// Open captures in/out's terminal-ness and, if in is a terminal, its
// original mode, without altering either yet (TS_INIT in the original).
func Open(in, out *os.File) (*Term, error) {
	t := &Term{
		in:            in,
		out:           out,
		inIsTerminal:  term.IsTerminal(int(in.Fd())),
		outIsTerminal: term.IsTerminal(int(out.Fd())),
		writer:        bufio.NewWriterSize(out, 8192),
		state:         StateInit,
	}
	if err := t.platformOpen(); err != nil {
		return nil, err
	}
	return t, nil
}

// State returns the terminal's current mode.
func (t *Term) State() State { return t.state }

// InIsTerminal reports whether the input fd is attached to a terminal.
func (t *Term) InIsTerminal() bool { return t.inIsTerminal }

// OutIsTerminal reports whether the output fd is attached to a terminal.
func (t *Term) OutIsTerminal() bool { return t.outIsTerminal }

// Raw enters raw mode: unbuffered, unechoed, byte-at-a-time input, signals
// left enabled so Ctrl-Z still suspends the shell. A no-op if already raw.
func (t *Term) Raw() error {
	if t.state == StateRaw {
		return nil
	}
	if err := t.platformRaw(); err != nil {
		return err
	}
	t.state = StateRaw
	return nil
}

// Orig restores the terminal's original mode. A no-op if already there.
func (t *Term) Orig() error {
	if t.state == StateOrig {
		return nil
	}
	if err := t.platformOrig(); err != nil {
		return err
	}
	t.state = StateOrig
	return nil
}

// Unknown marks the terminal's mode as untrusted, forcing the next Raw or
// Orig call to reprogram it even if State() already reports that value.
// Call this immediately after a spawned child process returns, since the
// child may have left the terminal in an arbitrary mode.
func (t *Term) Unknown() {
	t.state = StateUnknown
}

// Write buffers p for later Flush, the way the original shell accumulated
// redisplay output before a single write(2).
func (t *Term) Write(p []byte) (int, error) {
	return t.writer.Write(p)
}

// WriteString buffers s for later Flush.
func (t *Term) WriteString(s string) (int, error) {
	return t.writer.WriteString(s)
}

// Printf formats and buffers output for later Flush.
func (t *Term) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(t.writer, format, args...)
}

// Flush pushes buffered output to the terminal in one write.
func (t *Term) Flush() error { return t.writer.Flush() }

// Size returns the terminal's current column/row count, falling back to
// 80x24 when the output isn't a terminal (matching the original's default
// COLUMNS/LINES when unset).
func (t *Term) Size() (cols, rows int) {
	if !t.outIsTerminal {
		return 80, 24
	}
	c, r, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 80, 24
	}
	return c, r
}

// Read reads directly from the input fd, bypassing the output buffer; the
// line editor's reader loop drives this.
func (t *Term) Read(p []byte) (int, error) { return t.in.Read(p) }

// In returns the underlying input file, for callers (spawn) that need the
// raw fd/handle.
func (t *Term) In() *os.File { return t.in }

// Out returns the underlying output file.
func (t *Term) Out() *os.File { return t.out }

var _ io.Writer = (*Term)(nil)
