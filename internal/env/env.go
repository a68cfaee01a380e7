// Package env implements the shell's process environment: an
// atom-keyed map with optional case-insensitive lookup (Windows), plus the
// config/history path resolution and SHELL/SHLVL bookkeeping the original
// shell performs at startup.
package env

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"

	"github.com/drpriver/drsh/internal/atom"
)

// Flavor distinguishes the OS conventions that affect environment handling
// and path resolution (case sensitivity, config directory layout).
type Flavor int

const (
	FlavorLinux Flavor = iota
	FlavorApple
	FlavorWindows
	FlavorOther
)

// HostFlavor returns the Flavor matching runtime.GOOS.
func HostFlavor() Flavor {
	switch runtime.GOOS {
	case "linux":
		return FlavorLinux
	case "darwin":
		return FlavorApple
	case "windows":
		return FlavorWindows
	default:
		return FlavorOther
	}
}

type entry struct {
	key   *atom.Atom
	value *atom.Atom
}

// Env is the shell's process environment, keyed by interned atoms so
// comparisons and lookups are pointer equality rather than string
// comparison. On Windows, keys are matched case-insensitively via each
// atom's lowercase twin.
type Env struct {
	at              *atom.Table
	entries         []entry
	caseInsensitive bool
	flavor          Flavor
	home            *atom.Atom
}

// New builds an environment from a POSIX-style "K=V" slice (as returned by
// os.Environ), interning each key and value through at.
func New(at *atom.Table, environ []string, flavor Flavor) (*Env, error) {
	e := &Env{
		at:              at,
		caseInsensitive: flavor == FlavorWindows,
		flavor:          flavor,
	}
	for _, kv := range environ {
		i := indexByte(kv, '=')
		if i < 0 {
			continue
		}
		key, err := at.AtomizeString(kv[:i])
		if err != nil {
			return nil, err
		}
		value, err := at.AtomizeString(kv[i+1:])
		if err != nil {
			return nil, err
		}
		if err := e.Set(key, value); err != nil {
			return nil, err
		}
	}
	e.home = e.Get(at.Get(atom.EnvHOME))
	return e, nil
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func (e *Env) lookupKey(key *atom.Atom) *atom.Atom {
	if e.caseInsensitive {
		return key.Lowercase()
	}
	return key
}

// Set stores value under key, overwriting any prior value for the same
// (case-folded, if applicable) key. In case-insensitive mode the stored
// key atom is replaced by the spelling given in this call.
func (e *Env) Set(key, value *atom.Atom) error {
	lkey := e.lookupKey(key)
	for i := range e.entries {
		if e.lookupKey(e.entries[i].key) == lkey {
			if e.caseInsensitive {
				e.entries[i].key = key
			}
			e.entries[i].value = value
			return nil
		}
	}
	e.entries = append(e.entries, entry{key: key, value: value})
	return nil
}

// SetString interns key and value and stores them.
func (e *Env) SetString(key, value string) error {
	k, err := e.at.AtomizeString(key)
	if err != nil {
		return err
	}
	v, err := e.at.AtomizeString(value)
	if err != nil {
		return err
	}
	return e.Set(k, v)
}

// Get returns the atom stored for key, or nil if unset.
func (e *Env) Get(key *atom.Atom) *atom.Atom {
	lkey := e.lookupKey(key)
	for i := range e.entries {
		if e.lookupKey(e.entries[i].key) == lkey {
			return e.entries[i].value
		}
	}
	return nil
}

// GetString interns key and returns its value as a string, with ok=false if
// unset.
func (e *Env) GetString(key string) (string, bool) {
	k, err := e.at.AtomizeString(key)
	if err != nil {
		return "", false
	}
	v := e.Get(k)
	if v == nil {
		return "", false
	}
	return v.String(), true
}

// Home returns the interned HOME value captured at construction, or nil.
func (e *Env) Home() *atom.Atom { return e.home }

// Flavor returns the OS flavor this environment was built for.
func (e *Env) Flavor() Flavor { return e.flavor }

// Environ serializes the environment to POSIX "K=V" form, suitable for
// exec.Cmd.Env, sorted by key the way the set builtin's dump is sorted.
func (e *Env) Environ() []string {
	sorted := e.sortedEntries()
	out := make([]string, 0, len(sorted))
	for _, en := range sorted {
		out = append(out, en.key.String()+"="+en.value.String())
	}
	return out
}

func (e *Env) sortedEntries() []entry {
	cp := make([]entry, len(e.entries))
	copy(cp, e.entries)
	sort.Slice(cp, func(i, j int) bool {
		ki, kj := cp[i].key.String(), cp[j].key.String()
		if e.caseInsensitive {
			ki, kj = cp[i].key.Lowercase().String(), cp[j].key.Lowercase().String()
		}
		return ki < kj
	})
	return cp
}

// Dump returns "KEY=VALUE" lines sorted by key, the output of the set
// builtin called with no arguments.
func (e *Env) Dump() []string {
	return e.Environ()
}

// IncrementSHLVL reads the current SHLVL (defaulting to 0 if unset or
// unparsable), increments it, and stores the result.
func (e *Env) IncrementSHLVL() error {
	key := e.at.Get(atom.EnvSHLVL)
	lvl := 0
	if v := e.Get(key); v != nil {
		if n, err := strconv.Atoi(v.String()); err == nil {
			lvl = n
		}
	}
	return e.SetString(specialText(e.at, atom.EnvSHLVL), strconv.Itoa(lvl+1))
}

func specialText(at *atom.Table, kind atom.Special) string {
	return at.Get(kind).String()
}

// SetShellPath records the current executable's path under SHELL, the Go
// equivalent of the original's per-platform self-path lookup
// (GetModuleFileNameA on Windows, _NSGetExecutablePath on macOS,
// /proc/self/exe on Linux) -- os.Executable already abstracts all three.
func (e *Env) SetShellPath(exePath string) error {
	return e.SetString(specialText(e.at, atom.EnvSHELL), exePath)
}

// ErrNotFound mirrors the original's EC_NOT_FOUND for path-resolution
// failures (e.g. no HOME, no LOCALAPPDATA).
var ErrNotFound = fmt.Errorf("not found")
