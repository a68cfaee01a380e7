package dispatch_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drpriver/drsh/internal/atom"
	"github.com/drpriver/drsh/internal/dispatch"
	"github.com/drpriver/drsh/internal/env"
	"github.com/drpriver/drsh/internal/term"
)

func newTestTerm(t *testing.T) (*term.Term, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(); w.Close() })
	tm, err := term.Open(r, w)
	require.NoError(t, err)
	return tm, r
}

func readAll(t *testing.T, tm *term.Term, r *os.File) string {
	t.Helper()
	require.NoError(t, tm.Flush())
	buf := make([]byte, 4096)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return string(buf[:n])
}

func TestRunBuiltinEcho(t *testing.T) {
	tm, r := newTestTerm(t)
	debug := false
	err := dispatch.RunBuiltin(tm, nil, []string{"echo", "hello", "world"}, &debug)
	require.NoError(t, err)
	assert.Equal(t, "hello world \r\n", readAll(t, tm, r))
}

func TestRunBuiltinExitReturnsSentinel(t *testing.T) {
	tm, _ := newTestTerm(t)
	debug := false
	err := dispatch.RunBuiltin(tm, nil, []string{"exit"}, &debug)
	assert.ErrorIs(t, err, dispatch.ErrExit)
}

func TestRunBuiltinSetAndGet(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, nil, env.FlavorLinux)
	require.NoError(t, err)
	tm, _ := newTestTerm(t)
	debug := false

	err = dispatch.RunBuiltin(tm, e, []string{"set", "FOO", "bar"}, &debug)
	require.NoError(t, err)

	v, ok := e.GetString("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestRunBuiltinDebugTogglesFlag(t *testing.T) {
	tm, r := newTestTerm(t)
	debug := false

	require.NoError(t, dispatch.RunBuiltin(tm, nil, []string{"debug", "on"}, &debug))
	assert.True(t, debug)

	require.NoError(t, dispatch.RunBuiltin(tm, nil, []string{"debug"}, &debug))
	assert.Equal(t, "debug = true\r\n", readAll(t, tm, r))
}

func TestRunBuiltinPwdPrintsCurrentPWD(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"PWD=/tmp/x"}, env.FlavorLinux)
	require.NoError(t, err)
	tm, r := newTestTerm(t)
	debug := false

	require.NoError(t, dispatch.RunBuiltin(tm, e, []string{"pwd"}, &debug))
	assert.Equal(t, "/tmp/x\r\n", readAll(t, tm, r))
}
