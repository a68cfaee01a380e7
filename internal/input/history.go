package input

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"

	"github.com/drpriver/drsh/internal/atom"
)

// MoveUp walks one entry back in history, replacing the current line. A
// no-op at the oldest entry.
func (e *Editor) MoveUp() {
	if e.histCursor == 0 {
		return
	}
	e.histCursor--
	e.NeedsRedisplay = true
	e.setLine(e.hist[e.histCursor].Bytes())
}

// MoveDown walks one entry forward in history. Past the newest entry it
// clears the line, the way pressing down after reaching "now" does.
func (e *Editor) MoveDown() {
	e.histCursor++
	e.NeedsRedisplay = true
	if e.histCursor >= len(e.hist) {
		e.histCursor = len(e.hist)
		e.write.Clear()
		e.writeCursor = 0
		return
	}
	e.setLine(e.hist[e.histCursor].Bytes())
}

// HistAdd appends a (non-empty) accepted line to history, deduplicating a
// run of identical consecutive entries, and resets the history cursor to
// point just past the newest entry.
func (e *Editor) HistAdd(a *atom.Atom) {
	if a.Len() == 0 {
		return
	}
	e.histCursor = len(e.hist)
	if len(e.hist) > 0 && e.hist[len(e.hist)-1] == a {
		return
	}
	e.hist = append(e.hist, a)
	e.histCursor = len(e.hist)
}

// LoadHistory reads path's contents, splitting entries on NUL, '\n', or
// '\r' (mirroring the original's tri-delimiter history format), trims
// surrounding whitespace, interns each non-empty entry as an atom, and records the load boundary in histStart so a later
// Dump only appends newly-added entries.
func (e *Editor) LoadHistory(at *atom.Table, path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(splitOnNulNewlineCR)
	for sc.Scan() {
		tok := bytes.TrimSpace(sc.Bytes())
		if len(tok) == 0 {
			continue
		}
		a, err := at.Atomize(tok)
		if err != nil {
			return err
		}
		e.hist = append(e.hist, a)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	e.histStart = len(e.hist)
	e.histCursor = len(e.hist)
	return nil
}

func splitOnNulNewlineCR(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i, b := range data {
		if b == 0 || b == '\n' || b == '\r' {
			return i + 1, data[:i], nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	if atEOF {
		return 0, nil, bufio.ErrFinalToken
	}
	return 0, nil, nil
}

// DumpHistory appends every entry added since the last load (i.e. from
// histStart onward) to path, creating parent directories as needed.
func (e *Editor) DumpHistory(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	for i := e.histStart; i < len(e.hist); i++ {
		if _, err := f.Write(e.hist[i].Bytes()); err != nil {
			return err
		}
		if _, err := f.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
