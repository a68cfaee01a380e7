// Package input implements the line editor: key decoding, edit-buffer
// cursor movement, history navigation, tab completion, prompt rendering,
// and the redisplay algorithm that keeps a multi-line prompt's cursor
// position correct as the terminal wraps.
package input

// Command is a decoded editing command, or a plain input byte when
// non-negative (mirroring drsh_rb_to_cmd's "negative means control command,
// non-negative means literal byte" convention).
type Command int

const (
	CmdMoveHome             Command = -1
	CmdMoveLeft             Command = -2
	CmdInterrupt            Command = -3
	CmdDeleteForwardOrEOF   Command = -4
	CmdMoveEnd              Command = -5
	CmdMoveRight            Command = -6
	CmdCtrlG                Command = -7
	CmdDeleteBack           Command = -8
	CmdTab                  Command = -9
	CmdAccept               Command = -10
	CmdKillEndOfLine        Command = -11
	CmdClearScreen          Command = -12
	CmdEnter                Command = -13
	CmdMoveDown             Command = -14
	CmdCtrlO                Command = -15
	CmdMoveUp               Command = -16
	CmdCtrlQ                Command = -17
	CmdCtrlR                Command = -18
	CmdCtrlS                Command = -19
	CmdCtrlT                Command = -20
	CmdCtrlU                Command = -21
	CmdCtrlV                Command = -22
	CmdCtrlW                Command = -23
	CmdCtrlX                Command = -24
	CmdCtrlY                Command = -25
	CmdCtrlZ                Command = -26
	CmdEsc                  Command = -27
	CmdNop                  Command = -28
	CmdDeleteForward        Command = -128
	CmdShiftTab             Command = -129
)

// DecodeCommand inspects the start of buf and reports the Command it
// names plus how many bytes were consumed. A consumed count of 0 means
// buf doesn't yet hold a complete sequence (more bytes are needed).
func DecodeCommand(buf []byte) (cmd Command, consumed int) {
	if len(buf) == 0 {
		return 0, 0
	}
	c := buf[0]
	switch {
	case c < 27:
		return -Command(c), 1
	case c == 127:
		return CmdDeleteBack, 1
	case c > 27:
		return Command(c), 1
	}
	// c == 27 (ESC)
	if len(buf) > 2 {
		if buf[1] == '[' {
			if buf[2] >= '0' && buf[2] <= '9' && len(buf) > 3 {
				if buf[3] == '~' {
					switch buf[2] {
					case '3':
						return CmdDeleteForward, 4
					}
				}
			}
			switch buf[2] {
			case 'A':
				return CmdMoveUp, 3
			case 'B':
				return CmdMoveDown, 3
			case 'C':
				return CmdMoveRight, 3
			case 'D':
				return CmdMoveLeft, 3
			case 'H':
				return CmdMoveHome, 3
			case 'F':
				return CmdMoveEnd, 3
			case 'Z':
				return CmdShiftTab, 3
			}
			return 0, 0
		}
		if buf[1] == 'O' {
			switch buf[2] {
			case 'H':
				return CmdMoveHome, 3
			case 'F':
				return CmdMoveEnd, 3
			}
		}
	}
	return CmdEsc, 1
}
