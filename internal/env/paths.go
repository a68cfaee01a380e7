package env

import "path/filepath"

// ConfigPath returns the path to the shell's sourced startup script,
// following the same per-OS convention as history: macOS uses Application
// Support, Windows uses LOCALAPPDATA, everything else follows XDG_CONFIG_HOME
// (falling back to ~/.config).
func (e *Env) ConfigPath() (string, error) {
	dir, err := e.baseConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "drsh", "drsh_config.drsh"), nil
}

// HistoryPath returns the path to the persisted command history file. If
// DRSH_HISTORY is already set in the environment, that value wins and is
// returned unchanged; otherwise a per-OS default is computed and cached
// into the environment under DRSH_HISTORY.
func (e *Env) HistoryPath() (string, error) {
	if v, ok := e.GetString("DRSH_HISTORY"); ok {
		return v, nil
	}
	dir, err := e.baseStateDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "drsh", "drsh_history.txt")
	if err := e.SetString("DRSH_HISTORY", p); err != nil {
		return "", err
	}
	return p, nil
}

func (e *Env) baseConfigDir() (string, error) {
	switch e.flavor {
	case FlavorApple:
		home := e.homeString()
		if home == "" {
			return "", ErrNotFound
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case FlavorWindows:
		if v, ok := e.GetString("LOCALAPPDATA"); ok && v != "" {
			return v, nil
		}
		return "", ErrNotFound
	default:
		if v, ok := e.GetString("XDG_CONFIG_HOME"); ok && v != "" {
			return v, nil
		}
		home := e.homeString()
		if home == "" {
			return "", ErrNotFound
		}
		return filepath.Join(home, ".config"), nil
	}
}

func (e *Env) baseStateDir() (string, error) {
	switch e.flavor {
	case FlavorApple:
		home := e.homeString()
		if home == "" {
			return "", ErrNotFound
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case FlavorWindows:
		if v, ok := e.GetString("LOCALAPPDATA"); ok && v != "" {
			return v, nil
		}
		return "", ErrNotFound
	default:
		if v, ok := e.GetString("XDG_STATE_HOME"); ok && v != "" {
			return v, nil
		}
		if v, ok := e.GetString("XDG_DATA_HOME"); ok && v != "" {
			return v, nil
		}
		home := e.homeString()
		if home == "" {
			return "", ErrNotFound
		}
		return filepath.Join(home, ".local", "state"), nil
	}
}

func (e *Env) homeString() string {
	if e.home == nil {
		return ""
	}
	return e.home.String()
}
