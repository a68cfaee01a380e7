package dispatch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drpriver/drsh/internal/dispatch"
)

func TestIsAbsPathPosix(t *testing.T) {
	assert.True(t, dispatch.IsAbsPath("/usr/bin/ls", false))
	assert.False(t, dispatch.IsAbsPath("bin/ls", false))
}

func TestIsAbsPathWindowsDriveLetter(t *testing.T) {
	assert.True(t, dispatch.IsAbsPath(`C:/Windows`, true))
	assert.True(t, dispatch.IsAbsPath(`C:\Windows`, true))
	assert.True(t, dispatch.IsAbsPath(`\Windows`, true))
	assert.False(t, dispatch.IsAbsPath(`Windows`, true))
}

type fakeEnv struct {
	vars map[string]string
}

func (f *fakeEnv) GetString(key string) (string, bool) {
	v, ok := f.vars[key]
	return v, ok
}

func TestResolveProgramPathWithDirComponentPosix(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(prog, []byte("#!/bin/sh\n"), 0o755))

	e := &fakeEnv{vars: map[string]string{}}
	got, err := dispatch.ResolveProgramPath(e, prog, false)
	require.NoError(t, err)
	assert.Equal(t, prog, got)
}

func TestResolveProgramPathSearchesPATH(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(prog, []byte("#!/bin/sh\n"), 0o755))

	e := &fakeEnv{vars: map[string]string{"PATH": dir}}
	got, err := dispatch.ResolveProgramPath(e, "tool", false)
	require.NoError(t, err)
	assert.Equal(t, prog, got)
}

func TestResolveProgramPathNotFound(t *testing.T) {
	e := &fakeEnv{vars: map[string]string{"PATH": t.TempDir()}}
	_, err := dispatch.ResolveProgramPath(e, "nonexistent-tool-xyz", false)
	require.Error(t, err)
}

func TestResolveProgramPathWindowsAppendsPATHEXT(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "tool.EXE")
	require.NoError(t, os.WriteFile(prog, []byte("MZ"), 0o755))

	e := &fakeEnv{vars: map[string]string{"PATH": dir, "PATHEXT": ".COM;.EXE"}}
	got, err := dispatch.ResolveProgramPath(e, "tool", true)
	require.NoError(t, err)
	assert.Equal(t, prog, got)
}
