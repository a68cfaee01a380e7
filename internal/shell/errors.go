package shell

import (
	"errors"
	"io"

	"github.com/drpriver/drsh/internal/dispatch"
)

// ErrExit is returned up through ProcessLine/SourceFile when the "exit"
// builtin runs, letting a sourced file's remaining lines (and the REPL
// loop itself) unwind cleanly; Run stops on it and returns nil. It's the same sentinel dispatch's
// "exit" builtin returns, re-exported here since shell is where callers
// naturally look for it.
var ErrExit = dispatch.ErrExit

// ErrEOF is what the line editor returns at end-of-input (Ctrl-D on an
// empty line, or a non-interactive input stream draining), mirroring the
// original's EC_EOF. Run ends its loop on it and returns nil.
var ErrEOF = io.EOF

// ErrNotFound mirrors EC_NOT_FOUND -- a resource (history file, config
// path, program on PATH) could not be located.
var ErrNotFound = errors.New("not found")
