package dispatch

import "errors"

// ErrExit signals that the "exit" builtin ran; callers unwind their line
// loop (and, for a sourced file, abandon the rest of its lines) the same
// way the original's EC_EXIT return code does.
var ErrExit = errors.New("exit")
