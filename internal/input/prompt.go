package input

import (
	"strings"
	"time"
)

// CondenseCWD collapses every interior path component between the first
// and last slash down to its first byte (so /home/alice/projects/drsh
// becomes /h/a/p/drsh), matching drsh_dir_condense. wd is assumed to
// already have its separators normalized to '/' and any home prefix
// replaced with "~" by the caller.
func CondenseCWD(wd string) string {
	firstSlash := strings.IndexByte(wd, '/')
	lastSlash := strings.LastIndexByte(wd, '/')
	if lastSlash <= 0 {
		return wd
	}
	var b strings.Builder
	if firstSlash > 0 {
		b.WriteString(wd[:firstSlash])
	}
	wantWrite := true
	for i := firstSlash; i < lastSlash; i++ {
		c := wd[i]
		if c == '/' {
			wantWrite = true
			b.WriteByte(c)
			continue
		}
		if wantWrite {
			b.WriteByte(c)
			wantWrite = false
		}
	}
	b.WriteString(wd[lastSlash:])
	return b.String()
}

// DisplayCWD normalizes wd for prompt display: backslashes become forward
// slashes (Windows), a leading HOME match is collapsed to "~", and the
// result is then condensed.
func DisplayCWD(wd, home string, backslashIsSep bool) string {
	if backslashIsSep {
		wd = strings.ReplaceAll(wd, "\\", "/")
	}
	if home != "" && strings.HasPrefix(wd, home) {
		rest := wd[len(home):]
		if rest == "" || rest[0] == '/' {
			wd = "~" + rest
		}
	}
	return CondenseCWD(wd)
}

// fixedPromptEscapeBytes is the total length of the four literal ANSI SGR
// sequences refreshPrompt wraps around the date/time and cwd text: "\033[36m"
// (5) + "\033[32m" (5) + "\033[38;5;248m" (11) + "\033[0m" (4). The "> "
// after the third sequence is visible text and is not counted here.
const fixedPromptEscapeBytes = 5 + 5 + 11 + 4

// PromptBytes returns the most recently rendered prompt, including its ANSI
// escapes.
func (e *Editor) PromptBytes() []byte { return e.prompt }

// PromptVisualLen returns the prompt's rendered width, excluding the fixed
// ANSI SGR sequences, used by Redisplay's wrap-position arithmetic.
func (e *Editor) PromptVisualLen() int { return e.promptVisualLen }

// RefreshPrompt rebuilds the prompt buffer and its visual length (the
// length excluding the four fixed ANSI SGR sequences above) from the
// current time and condensed cwd, matching drsh_refresh_prompt's exact
// byte layout.
func (e *Editor) RefreshPrompt(now time.Time, condensedCWD string) {
	var b strings.Builder
	b.WriteString("\033[36m")
	b.WriteString(now.Format("01/02 "))
	hour := now.Format("3")
	if len(hour) == 1 {
		b.WriteByte(' ')
	}
	b.WriteString(now.Format("3:04PM "))
	b.WriteString("\033[32m")
	b.WriteString(condensedCWD)
	b.WriteString("\033[38;5;248m> ")
	b.WriteString("\033[0m")
	e.prompt = []byte(b.String())
	e.promptVisualLen = len(e.prompt) - fixedPromptEscapeBytes
}
