package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drpriver/drsh/internal/input"
)

func TestCondenseCWDCollapsesInteriorComponents(t *testing.T) {
	got := input.CondenseCWD("/home/alice/projects/drsh")
	assert.Equal(t, "/h/a/p/drsh", got)
}

func TestCondenseCWDLeavesShortPathAlone(t *testing.T) {
	got := input.CondenseCWD("/drsh")
	assert.Equal(t, "/drsh", got)
}

func TestCondenseCWDLeavesRootAlone(t *testing.T) {
	got := input.CondenseCWD("/")
	assert.Equal(t, "/", got)
}

func TestDisplayCWDCollapsesHomeToTilde(t *testing.T) {
	got := input.DisplayCWD("/home/alice/projects/drsh", "/home/alice", false)
	assert.Equal(t, "~/p/drsh", got)
}

func TestDisplayCWDConvertsBackslashesOnWindows(t *testing.T) {
	got := input.DisplayCWD(`C:\Users\alice\projects\drsh`, "", true)
	assert.Equal(t, "C:/U/a/p/drsh", got)
}

func TestRefreshPromptVisualLenExcludesFixedEscapes(t *testing.T) {
	e := input.NewEditor()
	now := time.Date(2026, 7, 30, 14, 5, 0, 0, time.UTC)
	e.RefreshPrompt(now, "~/drsh")
	// visual length should equal len(datetime text) + len("~/drsh") + len("> ")
	assert.True(t, len(e.PromptBytes()) > 0)
	// "07/30 " + " 2:05PM " + "~/drsh" + "> " = 6 + 8 + 6 + 2
	assert.Equal(t, 22, e.PromptVisualLen())
}
