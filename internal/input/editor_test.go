package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drpriver/drsh/internal/atom"
	"github.com/drpriver/drsh/internal/input"
)

func TestInputAndCursorMovement(t *testing.T) {
	e := input.NewEditor()
	for _, c := range []byte("hllo") {
		e.InputByte(c)
	}
	assert.Equal(t, "hllo", string(e.Line()))

	e.MoveHome()
	e.MoveRight()
	e.InputByte('e')
	assert.Equal(t, "hello", string(e.Line()))
	assert.Equal(t, 2, e.Cursor())
}

func TestDeleteLeftAndRight(t *testing.T) {
	e := input.NewEditor()
	for _, c := range []byte("abc") {
		e.InputByte(c)
	}
	e.MoveHome()
	e.MoveRight()
	e.MoveRight()
	e.DeleteLeft()
	assert.Equal(t, "ac", string(e.Line()))

	e.MoveHome()
	e.DeleteRight()
	assert.Equal(t, "c", string(e.Line()))
}

func TestKillToEndOfLine(t *testing.T) {
	e := input.NewEditor()
	for _, c := range []byte("hello world") {
		e.InputByte(c)
	}
	e.MoveHome()
	for i := 0; i < 5; i++ {
		e.MoveRight()
	}
	e.KillToEndOfLine()
	assert.Equal(t, "hello", string(e.Line()))
}

func TestClearResetsLine(t *testing.T) {
	e := input.NewEditor()
	e.InputByte('x')
	e.Clear()
	assert.Equal(t, "", string(e.Line()))
	assert.Equal(t, 0, e.Cursor())
}

func TestHistoryNavigation(t *testing.T) {
	at := atom.NewTable()
	e := input.NewEditor()

	for _, s := range []string{"echo a", "echo b", "echo c"} {
		a, err := at.AtomizeString(s)
		require.NoError(t, err)
		e.HistAdd(a)
	}

	e.MoveUp()
	assert.Equal(t, "echo c", string(e.Line()))
	e.MoveUp()
	assert.Equal(t, "echo b", string(e.Line()))
	e.MoveUp()
	assert.Equal(t, "echo a", string(e.Line()))
	e.MoveUp() // clamped at oldest
	assert.Equal(t, "echo a", string(e.Line()))

	e.MoveDown()
	assert.Equal(t, "echo b", string(e.Line()))
	e.MoveDown()
	assert.Equal(t, "echo c", string(e.Line()))
	e.MoveDown()
	assert.Equal(t, "", string(e.Line()))
}

func TestHistAddDedupesConsecutive(t *testing.T) {
	at := atom.NewTable()
	e := input.NewEditor()
	a, err := at.AtomizeString("echo a")
	require.NoError(t, err)
	e.HistAdd(a)
	e.HistAdd(a)

	e.MoveUp()
	assert.Equal(t, "echo a", string(e.Line()))
	e.MoveUp() // should stay (only one entry)
	assert.Equal(t, "echo a", string(e.Line()))
}
