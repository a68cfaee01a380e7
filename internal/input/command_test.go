package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drpriver/drsh/internal/input"
)

func TestDecodeControlBytes(t *testing.T) {
	cmd, n := input.DecodeCommand([]byte{1})
	assert.Equal(t, input.CmdMoveHome, cmd)
	assert.Equal(t, 1, n)
}

func TestDecodeDeleteBackIsDEL(t *testing.T) {
	cmd, n := input.DecodeCommand([]byte{127})
	assert.Equal(t, input.CmdDeleteBack, cmd)
	assert.Equal(t, 1, n)
}

func TestDecodePlainByte(t *testing.T) {
	cmd, n := input.DecodeCommand([]byte("x"))
	assert.Equal(t, input.Command('x'), cmd)
	assert.Equal(t, 1, n)
}

func TestDecodeArrowKeys(t *testing.T) {
	cases := map[string]input.Command{
		"\x1b[A": input.CmdMoveUp,
		"\x1b[B": input.CmdMoveDown,
		"\x1b[C": input.CmdMoveRight,
		"\x1b[D": input.CmdMoveLeft,
		"\x1b[H": input.CmdMoveHome,
		"\x1b[F": input.CmdMoveEnd,
		"\x1b[Z": input.CmdShiftTab,
	}
	for seq, want := range cases {
		cmd, n := input.DecodeCommand([]byte(seq))
		assert.Equal(t, want, cmd, seq)
		assert.Equal(t, 3, n, seq)
	}
}

func TestDecodeDeleteForwardSequence(t *testing.T) {
	cmd, n := input.DecodeCommand([]byte("\x1b[3~"))
	assert.Equal(t, input.CmdDeleteForward, cmd)
	assert.Equal(t, 4, n)
}

func TestDecodeSS3HomeEnd(t *testing.T) {
	cmd, n := input.DecodeCommand([]byte("\x1bOH"))
	assert.Equal(t, input.CmdMoveHome, cmd)
	assert.Equal(t, 3, n)

	cmd, n = input.DecodeCommand([]byte("\x1bOF"))
	assert.Equal(t, input.CmdMoveEnd, cmd)
	assert.Equal(t, 3, n)
}

func TestDecodeBareEscWithoutFollowingBytes(t *testing.T) {
	cmd, n := input.DecodeCommand([]byte{27})
	assert.Equal(t, input.CmdEsc, cmd)
	assert.Equal(t, 1, n)
}

func TestDecodeEmptyNeedsMoreBytes(t *testing.T) {
	cmd, n := input.DecodeCommand(nil)
	assert.Equal(t, 0, n)
	assert.Equal(t, input.Command(0), cmd)
}
