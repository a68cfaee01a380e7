package input

import (
	"io"
	"time"

	"github.com/drpriver/drsh/internal/atom"
)

// PromptEnvironment is the slice of *env.Env ReadLine needs to render the
// prompt and scope tab completion: the current directory and the home
// directory (for tilde-collapsing the prompt). Whether paths use Windows
// separators comes from ReadLine's windowsStyle argument instead.
type PromptEnvironment interface {
	GetString(key string) (string, bool)
}

// sizer reports the terminal's current dimensions; *term.Term satisfies
// it alongside byteSource.
type sizer interface {
	Size() (cols, rows int)
}

// writer is the terminal output surface ReadLine writes redisplay bytes
// to; *term.Term satisfies it.
type writer interface {
	Write(p []byte) (int, error)
	Flush() error
	InIsTerminal() bool
	OutIsTerminal() bool
	Raw() error
}

// terminal bundles byteSource, sizer, and writer -- everything ReadLine
// needs from *term.Term.
type terminal interface {
	byteSource
	sizer
	writer
}

// ReadLine drives the character-at-a-time edit loop: put the terminal in
// raw mode, repaint on every state change, decode and apply commands, and
// return the finished line on CmdAccept/CmdEnter. Returns io.EOF when
// CmdDeleteForwardOrEOF arrives on an empty line (Ctrl-D), matching
// drsh_read_line.
func (e *Editor) ReadLine(t terminal, at *atom.Table, pe PromptEnvironment, windowsStyle bool) ([]byte, error) {
	if err := t.Raw(); err != nil {
		return nil, err
	}
	e.Reset()
	pwd, _ := pe.GetString("PWD")
	home, _ := pe.GetString("HOME")

	for {
		if e.NeedsRedisplay && t.InIsTerminal() && t.OutIsTerminal() {
			cols, _ := t.Size()
			condensed := DisplayCWD(pwd, home, windowsStyle)
			e.RefreshPrompt(time.Now(), condensed)
			out := e.Redisplay(cols)
			if _, err := t.Write(out); err != nil {
				return nil, err
			}
			if err := t.Flush(); err != nil {
				return nil, err
			}
		}
		cmd, err := e.ReadCommand(t)
		if err != nil {
			return nil, err
		}
		if cmd != CmdTab && cmd != CmdShiftTab && cmd != CmdEsc {
			e.EndCompletion()
		}
		if cmd >= 0 {
			e.InputByte(byte(cmd))
			continue
		}
		switch cmd {
		case CmdDeleteBack:
			e.DeleteLeft()
		case CmdDeleteForwardOrEOF:
			if e.write.Len() == 0 {
				return nil, io.EOF
			}
			e.DeleteRight()
		case CmdDeleteForward:
			e.DeleteRight()
		case CmdMoveRight:
			e.MoveRight()
		case CmdMoveLeft:
			e.MoveLeft()
		case CmdMoveUp:
			e.MoveUp()
		case CmdMoveDown:
			e.MoveDown()
		case CmdMoveHome:
			e.MoveHome()
		case CmdMoveEnd:
			e.MoveEnd()
		case CmdInterrupt:
			e.Clear()
		case CmdTab:
			if err := e.StartCompletion(at, pwd); err != nil {
				return nil, err
			}
		case CmdShiftTab:
			e.PrevCompletion()
		case CmdKillEndOfLine:
			e.KillToEndOfLine()
		case CmdClearScreen:
			e.NeedsClearScreen = true
			e.NeedsRedisplay = true
		case CmdAccept, CmdEnter:
			line := make([]byte, e.write.Len())
			copy(line, e.write.Readable())
			return line, nil
		case CmdEsc:
			if e.inCompletion {
				e.CancelCompletion()
			}
		default:
			// Ctrl-G/O/Q/R/S/T/U/V/W/X/Y/Z and anything else: no-op, matching
			// the original's reserved-but-unbound control keys.
		}
	}
}
