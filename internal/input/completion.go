package input

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/drpriver/drsh/internal/atom"
)

// word is one tab-completion candidate together with its precomputed
// ranking fields, mirroring the original's DrshWord.
type word struct {
	a             *atom.Atom
	distance      int
	idistance     int
	prefixMatch   bool
	iprefixMatch  bool
}

// completableToken finds the token being completed by scanning backward
// from the end of line (up to the write cursor) for an unescaped space,
// then further splits it into directory and base components on the last
// unescaped '/' (or '\\' when backslashIsSep), matching
// drsh_parse_completable_token.
func completableToken(line []byte, backslashIsSep bool) (tokStart int, dirname, basename string) {
	if len(line) == 0 {
		return 0, "", ""
	}
	end := len(line)
	begin := 0
	p := end
	slash := -1
	for {
		p--
		c := line[p]
		if c == ' ' {
			if p != begin && line[p-1] == '\\' {
				continue
			}
			p++
			break
		}
		if slash < 0 {
			if c == '/' {
				slash = p
			} else if backslashIsSep && c == '\\' {
				if p != begin && line[p-1] == '\\' {
					continue
				}
				slash = p
			}
		}
		if p == begin {
			break
		}
	}
	tokStart = p
	if slash >= 0 {
		basename = string(line[slash+1 : end])
		dirname = string(line[p : slash+1])
	} else {
		basename = string(line[p:end])
	}
	return tokStart, dirname, basename
}

// candidateDir resolves the directory a completion should enumerate:
// dirname if absolute, pwd-joined-with-dirname if relative and non-empty,
// or pwd itself if dirname is empty.
func candidateDir(pwd, dirname string) string {
	if dirname == "" {
		if pwd == "" {
			return "."
		}
		return pwd
	}
	if filepath.IsAbs(dirname) {
		return dirname
	}
	if pwd == "" {
		return dirname
	}
	return filepath.Join(pwd, dirname)
}

// StartCompletion builds (or, if already cycling, advances) the ranked
// candidate list for the token at the cursor and replaces it with the next
// candidate in rank order, cycling back to the first after the last.
// dirsOnly restricts candidates to directory entries (used after "cd ").
func (e *Editor) StartCompletion(at *atom.Table, pwd string) error {
	if !e.inCompletion {
		line := e.write.Readable()[:e.writeCursor]
		dirsOnly := len(line) > 2 && strings.HasPrefix(string(line), "cd ")
		_, dirname, basename := completableToken(line, false)

		var words []word
		baseAtom, err := at.AtomizeString(basename)
		if err != nil {
			return err
		}
		words = append(words, word{a: baseAtom})

		dir := candidateDir(pwd, dirname)
		entries, _ := os.ReadDir(dir)
		for _, ent := range entries {
			if dirsOnly && !ent.IsDir() {
				continue
			}
			a, err := at.AtomizeString(ent.Name())
			if err != nil {
				continue
			}
			words = append(words, word{a: a})
		}

		bname := []byte(basename)
		for i := range words {
			w := &words[i]
			if len(bname) > 0 {
				w.distance = expansionDistance(w.a.Bytes(), bname)
				w.idistance = expansionDistanceFold(w.a.Bytes(), bname)
			}
			if len(bname) <= w.a.Len() {
				w.prefixMatch = hasPrefixBytes(w.a.Bytes(), bname)
				w.iprefixMatch = hasPrefixBytesFold(w.a.Bytes(), bname)
			}
		}
		sort.SliceStable(words, func(i, j int) bool {
			return wordLess(words[i], words[j])
		})
		// Drop trailing entries whose case-insensitive distance is -1
		// (impossible matches), matching the original's tail trim.
		n := len(words)
		for n > 0 && words[n-1].idistance == -1 {
			n--
		}
		words = words[:n]

		e.completions = words
		e.completionCur = 0
		e.inCompletion = true
	}

	if len(e.completions) == 0 {
		return nil
	}
	e.completionCur++
	if e.completionCur >= len(e.completions) {
		e.completionCur = 0
	}
	e.applyCompletion(e.completionCur)
	return nil
}

// PrevCompletion cycles to the previous candidate, wrapping to the last.
func (e *Editor) PrevCompletion() {
	if !e.inCompletion {
		return
	}
	shown := e.completions[e.completionCur].a
	for i := 0; i < shown.Len(); i++ {
		e.DeleteLeft()
	}
	e.completionCur--
	if e.completionCur < 0 || e.completionCur >= len(e.completions) {
		e.completionCur = len(e.completions) - 1
	}
	next := e.completions[e.completionCur].a
	for i := 0; i < next.Len(); i++ {
		e.InputByte(next.Bytes()[i])
	}
}

// CancelCompletion restores the original (uncompleted) token and ends
// cycling.
func (e *Editor) CancelCompletion() {
	if !e.inCompletion {
		return
	}
	cur := e.completions[e.completionCur].a
	for i := 0; i < cur.Len(); i++ {
		e.DeleteLeft()
	}
	first := e.completions[0].a
	for i := 0; i < first.Len(); i++ {
		e.InputByte(first.Bytes()[i])
	}
	e.EndCompletion()
}

// EndCompletion stops cycling without altering the line, called whenever a
// non-completion-cycling key is pressed.
func (e *Editor) EndCompletion() {
	e.inCompletion = false
	e.completions = nil
}

func (e *Editor) applyCompletion(cur int) {
	prevIdx := cur - 1
	if prevIdx < 0 {
		prevIdx = len(e.completions) - 1
	}
	prev := e.completions[prevIdx].a
	for i := 0; i < prev.Len(); i++ {
		e.DeleteLeft()
	}
	next := e.completions[cur].a
	for i := 0; i < next.Len(); i++ {
		e.InputByte(next.Bytes()[i])
	}
}

func hasPrefixBytes(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func hasPrefixBytesFold(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i]|0x20 != prefix[i]|0x20 {
			return false
		}
	}
	return true
}

// wordLess implements word_cmp's total order: prefix match first, then
// case-insensitive prefix match, then ascending distance, then ascending
// case-insensitive distance, then non-dot-prefixed names first, then
// lexicographic.
func wordLess(l, r word) bool {
	if l.prefixMatch != r.prefixMatch {
		return l.prefixMatch
	}
	if l.iprefixMatch != r.iprefixMatch {
		return l.iprefixMatch
	}
	if l.distance != r.distance {
		return distanceRank(l.distance) < distanceRank(r.distance)
	}
	if l.idistance != r.idistance {
		return distanceRank(l.idistance) < distanceRank(r.idistance)
	}
	lDot := l.a.Len() > 0 && l.a.Bytes()[0] == '.'
	rDot := r.a.Len() > 0 && r.a.Bytes()[0] == '.'
	if lDot != rDot {
		return !lDot
	}
	return l.a.String() < r.a.String()
}

// distanceRank orders an impossible (-1) distance after every real one.
func distanceRank(d int) int {
	if d < 0 {
		return int(^uint(0) >> 1)
	}
	return d
}
