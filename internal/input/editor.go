package input

import (
	"github.com/drpriver/drsh/internal/atom"
	"github.com/drpriver/drsh/internal/buffer"
)

// Editor holds the line editor's mutable state: the in-progress write
// buffer and cursor, history, tab-completion state, prompt, and the
// redisplay bookkeeping needed to reposition the cursor on a wrapped,
// multi-line prompt.
type Editor struct {
	write       buffer.Grow
	writeCursor int

	hist      []*atom.Atom
	histStart int
	histCursor int

	completions    []word
	completionCur  int
	inCompletion   bool

	prompt          []byte
	promptVisualLen int

	NeedsRedisplay   bool
	NeedsClearScreen bool

	// colsUp is how many rows below the prompt's first row the cursor was
	// left by the previous refresh, so the next refresh knows how far up to
	// move before rewriting the prompt/line.
	colsUp int

	readBuf    buffer.Grow
	readCursor int
}

// NewEditor returns a ready-to-use Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Line returns the current contents of the write buffer.
func (e *Editor) Line() []byte { return e.write.Readable() }

// Cursor returns the current cursor offset within the write buffer.
func (e *Editor) Cursor() int { return e.writeCursor }

// Reset clears the write buffer and cursor for a fresh line, the way
// drsh_read_line does at the top of each call.
func (e *Editor) Reset() {
	e.write.Clear()
	e.writeCursor = 0
	e.NeedsRedisplay = true
}

// InputByte inserts c at the cursor and advances it.
func (e *Editor) InputByte(c byte) {
	e.write.Insert(e.writeCursor, []byte{c})
	e.writeCursor++
	e.NeedsRedisplay = true
}

// MoveHome moves the cursor to the start of the line.
func (e *Editor) MoveHome() {
	e.writeCursor = 0
	e.NeedsRedisplay = true
}

// MoveEnd moves the cursor to the end of the line.
func (e *Editor) MoveEnd() {
	e.writeCursor = e.write.Len()
	e.NeedsRedisplay = true
}

// MoveLeft moves the cursor one byte left, clamped at 0.
func (e *Editor) MoveLeft() {
	if e.writeCursor > 0 {
		e.writeCursor--
	}
	e.NeedsRedisplay = true
}

// MoveRight moves the cursor one byte right, clamped at the buffer length.
func (e *Editor) MoveRight() {
	if e.writeCursor < e.write.Len() {
		e.writeCursor++
	}
	e.NeedsRedisplay = true
}

// DeleteLeft removes the byte before the cursor (backspace).
func (e *Editor) DeleteLeft() {
	if e.writeCursor == 0 {
		return
	}
	e.write.Remove(e.writeCursor-1, 1)
	e.writeCursor--
	e.NeedsRedisplay = true
}

// DeleteRight removes the byte at the cursor (delete/fwd-delete).
func (e *Editor) DeleteRight() {
	if e.writeCursor == e.write.Len() {
		return
	}
	e.write.Remove(e.writeCursor, 1)
	e.NeedsRedisplay = true
}

// KillToEndOfLine truncates the buffer at the cursor.
func (e *Editor) KillToEndOfLine() {
	if e.write.Len() == e.writeCursor {
		return
	}
	e.write.SetLen(e.writeCursor)
	e.NeedsRedisplay = true
}

// Clear empties the line, the way Ctrl-C does mid-edit.
func (e *Editor) Clear() {
	if e.writeCursor == 0 && e.write.Len() == 0 {
		return
	}
	e.write.Clear()
	e.writeCursor = 0
	e.NeedsRedisplay = true
}

func (e *Editor) setLine(s []byte) {
	e.write.Clear()
	e.write.Append(s)
	e.writeCursor = e.write.Len()
	e.NeedsRedisplay = true
}
