package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drpriver/drsh/internal/atom"
	"github.com/drpriver/drsh/internal/env"
)

func TestSetAndGetRoundtrip(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"FOO=bar", "HOME=/home/u"}, env.FlavorLinux)
	require.NoError(t, err)

	v, ok := e.GetString("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestCaseInsensitiveLookupOnWindows(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"Path=C:\\x"}, env.FlavorWindows)
	require.NoError(t, err)

	v, ok := e.GetString("PATH")
	require.True(t, ok)
	assert.Equal(t, "C:\\x", v)

	v, ok = e.GetString("path")
	require.True(t, ok)
	assert.Equal(t, "C:\\x", v)
}

func TestCaseSensitiveLookupOnLinux(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"Path=C:\\x"}, env.FlavorLinux)
	require.NoError(t, err)

	_, ok := e.GetString("PATH")
	assert.False(t, ok)
}

func TestSetOverwritesPreservingOriginalCaseOffWindows(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"FOO=one"}, env.FlavorLinux)
	require.NoError(t, err)
	require.NoError(t, e.SetString("FOO", "two"))

	v, ok := e.GetString("FOO")
	require.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestEnvironIsSorted(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"ZEBRA=1", "APPLE=2"}, env.FlavorLinux)
	require.NoError(t, err)

	out := e.Environ()
	require.Len(t, out, 2)
	assert.Equal(t, "APPLE=2", out[0])
	assert.Equal(t, "ZEBRA=1", out[1])
}

func TestIncrementSHLVL(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, nil, env.FlavorLinux)
	require.NoError(t, err)

	require.NoError(t, e.IncrementSHLVL())
	v, ok := e.GetString("SHLVL")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, e.IncrementSHLVL())
	v, _ = e.GetString("SHLVL")
	assert.Equal(t, "2", v)
}

func TestConfigPathUsesXDGOnLinux(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"XDG_CONFIG_HOME=/xdg/config"}, env.FlavorLinux)
	require.NoError(t, err)

	p, err := e.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/drsh/drsh_config.drsh", p)
}

func TestConfigPathFallsBackToHomeDotConfig(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"HOME=/home/u"}, env.FlavorLinux)
	require.NoError(t, err)

	p, err := e.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.config/drsh/drsh_config.drsh", p)
}

func TestHistoryPathIsCachedIntoEnv(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"HOME=/home/u"}, env.FlavorLinux)
	require.NoError(t, err)

	p, err := e.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.local/state/drsh/drsh_history.txt", p)

	v, ok := e.GetString("DRSH_HISTORY")
	require.True(t, ok)
	assert.Equal(t, p, v)
}

func TestHistoryPathHonorsExplicitOverride(t *testing.T) {
	at := atom.NewTable()
	e, err := env.New(at, []string{"DRSH_HISTORY=/custom/hist.txt"}, env.FlavorLinux)
	require.NoError(t, err)

	p, err := e.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/hist.txt", p)
}
