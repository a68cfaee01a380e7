package shelltoken

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// hasGlobMeta reports whether s contains any of the glob metacharacters
// this package expands (*, ?, [).
func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// ToArgv canonicalizes each token and, on non-Windows targets, expands any
// resulting glob pattern against the current working directory's entries,
// mirroring drsh_tokens_to_argv's GLOB_NOCHECK semantics: a pattern that
// matches nothing passes through unexpanded rather than vanishing. On
// Windows no expansion happens; child programs are expected to expand
// their own wildcards, matching the platform convention the original
// shell follows.
func ToArgv(tokens []Token, e Environment) []string {
	argv := make([]string, 0, len(tokens))
	windows := runtime.GOOS == "windows"
	for _, tok := range tokens {
		word := Canonicalize(tok, windows, e)
		if windows || !hasGlobMeta(word) {
			argv = append(argv, word)
			continue
		}
		matches, err := expandGlob(word)
		if err != nil || len(matches) == 0 {
			argv = append(argv, word) // GLOB_NOCHECK: literal pattern survives
			continue
		}
		argv = append(argv, matches...)
	}
	return argv
}

// expandGlob expands pattern against the directory it names (or the
// current directory, if the pattern has no directory component), returning
// matching paths sorted lexicographically, the way glob(3) does.
func expandGlob(pattern string) ([]string, error) {
	dir, base := filepath.Split(pattern)
	if dir == "" {
		dir = "."
	} else {
		dir = filepath.Clean(dir)
	}
	g, err := glob.Compile(base, '/')
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, ent := range entries {
		name := ent.Name()
		if !g.Match(name) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if filepath.Dir(pattern) == "." && !strings.Contains(pattern, "/") {
			out = append(out, name)
		} else {
			out = append(out, filepath.Join(dir, name))
		}
	}
	sort.Strings(out)
	return out, nil
}
