// Package dispatch resolves program paths and spawns child processes on
// the shell's behalf, and carries out the handful of built-in commands
// (cd, echo, exit, pwd, set, debug) that never leave the shell process.
// "source" and "time" are handled by the shell package.
package dispatch

import (
	"os"
	"strings"
)

// IsAbsPath reports whether path is an absolute path, honoring Windows
// drive-letter and backslash-rooted forms when windowsStyle is set.
// Mirrors drsh_path_is_abs.
func IsAbsPath(path string, windowsStyle bool) bool {
	if path == "" {
		return false
	}
	if windowsStyle {
		if len(path) > 2 && path[1] == ':' && (path[2] == '/' || path[2] == '\\') {
			c := path[0] | 0x20
			if c >= 'a' && c <= 'z' {
				return true
			}
		}
		if path[0] == '\\' {
			return true
		}
	}
	return path[0] == '/'
}

// hasDirComponent reports whether program contains any path separator,
// which rules out a PATH search and makes it resolve relative to the
// current directory instead.
func hasDirComponent(program string, windowsStyle bool) bool {
	if IsAbsPath(program, windowsStyle) {
		return true
	}
	if strings.ContainsRune(program, '/') {
		return true
	}
	if windowsStyle && strings.ContainsRune(program, '\\') {
		return true
	}
	return false
}

func splitExts(pathext string) []string {
	if pathext == "" {
		return []string{".exe"}
	}
	parts := strings.Split(pathext, ";")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{".exe"}
	}
	return out
}

func hasAnyExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func joinDir(dir, program string, windowsStyle bool) string {
	if dir == "" {
		return program
	}
	last := dir[len(dir)-1]
	if windowsStyle && last == '\\' {
		return dir + program
	}
	if last == '/' {
		return dir + program
	}
	return dir + "/" + program
}

// windowsCandidate tries every PATHEXT-derived suffix against base (which
// already has a directory prefix, if any), returning the first that
// exists on disk. If base already carries one of the known extensions,
// that exact path is tried first, matching drsh_env_resolve_prog_path's
// has_ext fast path.
func windowsCandidate(base string, exts []string) (string, bool) {
	if hasAnyExt(base, exts) {
		if fileExists(base) {
			return base, true
		}
	}
	for _, ext := range exts {
		candidate := base + ext
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ErrProgramNotFound is returned by ResolveProgramPath when no candidate
// path exists on disk.
type ErrProgramNotFound struct{ Program string }

func (e *ErrProgramNotFound) Error() string {
	return "unable to resolve program path for '" + e.Program + "'"
}

// environment is the subset of *env.Env dispatch needs for path
// resolution, kept narrow so tests can supply a fake.
type environment interface {
	GetString(key string) (string, bool)
}

// ResolveProgramPath finds the executable backing program, mirroring
// drsh_env_resolve_prog_path: a program containing a path separator (or
// already absolute) is checked directly (with PATHEXT suffixes tried on
// Windows); otherwise each PATH directory is searched in order, and on
// Windows failing that falls back to the current directory.
func ResolveProgramPath(e environment, program string, windowsStyle bool) (string, error) {
	exts := []string{".exe"}
	if windowsStyle {
		if pe, ok := e.GetString("PATHEXT"); ok && pe != "" {
			exts = splitExts(pe)
		}
	}
	if hasDirComponent(program, windowsStyle) {
		if !windowsStyle {
			if fileExists(program) {
				return program, nil
			}
			return "", &ErrProgramNotFound{Program: program}
		}
		if p, ok := windowsCandidate(program, exts); ok {
			return p, nil
		}
		return "", &ErrProgramNotFound{Program: program}
	}
	path, _ := e.GetString("PATH")
	sep := byte(':')
	if windowsStyle {
		sep = ';'
	}
	for _, dir := range strings.Split(path, string(sep)) {
		if dir == "" {
			continue
		}
		candidate := joinDir(dir, program, windowsStyle)
		if !windowsStyle {
			if fileExists(candidate) {
				return candidate, nil
			}
			continue
		}
		if p, ok := windowsCandidate(candidate, exts); ok {
			return p, nil
		}
	}
	if windowsStyle {
		if pwd, ok := e.GetString("PWD"); ok {
			candidate := joinDir(pwd, program, windowsStyle)
			if p, ok := windowsCandidate(candidate, exts); ok {
				return p, nil
			}
		}
	}
	return "", &ErrProgramNotFound{Program: program}
}
